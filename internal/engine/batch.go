package engine

import (
	"runtime"
	"sync"

	"github.com/rplaado/fieldpath/internal/model"
)

// ScanBatch applies the scanner independently to each field, fanning the
// per-field scans out over a bounded worker pool. Each field's geometry is
// immutable input and every result lands in its own slot, so the join is the
// only synchronization point. A failing field carries its error in its item
// and never aborts sibling scans; failed items are excluded from the global
// best.
func (s *Scanner) ScanBatch(fields []model.Field) model.BatchResult {
	items := make([]model.BatchItem, len(fields))

	workers := s.Settings.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(fields) {
		workers = len(fields)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				item := model.BatchItem{Field: fields[i]}
				item.Result, item.Err = s.Scan(fields[i])
				items[i] = item
			}
		}()
	}
	for i := range fields {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	best := -1
	for i := range items {
		if items[i].Err != nil {
			continue
		}
		if best < 0 || items[i].Result.PassCount < items[best].Result.PassCount {
			best = i
		}
	}
	return model.BatchResult{Items: items, BestIndex: best}
}
