// FieldPath — field pass-count optimizer
//
// Finds, for each field boundary and a fixed machine operating width, the
// driving heading that covers the field in the fewest parallel passes, and
// optionally compares it against the heading currently driven.
//
// Input is one or more GeoJSON files of field boundaries in a projected
// (linear-unit) coordinate system. Reprojection, shapefile extraction and
// map/PDF rendering are left to the surrounding tooling.
//
// Build:
//
//	go build -o fieldpath ./cmd/fieldpath
//
// Usage:
//
//	fieldpath -width 48 boundaries.geojson
//	fieldpath -width 36 -heading 270 -out results.geojson north.geojson south.geojson
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rplaado/fieldpath/internal/engine"
	"github.com/rplaado/fieldpath/internal/fieldio"
	"github.com/rplaado/fieldpath/internal/model"
	"github.com/rplaado/fieldpath/internal/project"
)

func main() {
	log.SetFlags(0)

	width := flag.Float64("width", 0, "machine operating width (same unit as coordinates; 0 = saved default)")
	step := flag.Float64("step", 0, "angle search resolution in degrees (0 = saved default)")
	heading := flag.Float64("heading", -1, "current travel heading in [0,360) to score against the optimum (-1 = off)")
	workers := flag.Int("workers", 0, "concurrent field scans (0 = number of CPUs)")
	out := flag.String("out", "", "write results as GeoJSON to this path")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: fieldpath [flags] <boundaries.geojson> [more.geojson ...]")
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("warning: could not read config: %v", err)
		config = model.DefaultAppConfig()
	}
	settings := model.DefaultScanSettings()
	config.ApplyToSettings(&settings)
	if *width > 0 {
		settings.MachineWidth = *width
	}
	if *step > 0 {
		settings.AngleStep = *step
	}
	if *workers > 0 {
		settings.Workers = *workers
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("fieldpath: %v", err)
	}

	var fields []model.Field
	for _, path := range flag.Args() {
		loaded, err := fieldio.LoadFields(path)
		if err != nil {
			log.Fatalf("fieldpath: %v", err)
		}
		if len(loaded) == 0 {
			log.Printf("warning: no polygon features in %s", path)
		}
		fields = append(fields, loaded...)
		project.RememberRecentFile(&config, path, 10)
	}
	if len(fields) == 0 {
		log.Fatal("fieldpath: no fields to optimize")
	}
	// Best-effort; a read-only home directory is not fatal.
	_ = project.SaveAppConfig(project.DefaultConfigPath(), config)

	scanner := engine.New(settings)
	batch := scanner.ScanBatch(fields)

	fmt.Printf("machine width %g, angle step %g°, %d field(s)\n\n", settings.MachineWidth, settings.AngleStep, len(fields))
	for i := range batch.Items {
		item := &batch.Items[i]
		if item.Err != nil {
			fmt.Printf("%-30s  scan failed: %v\n", item.Field.Name, item.Err)
			continue
		}
		r := item.Result
		fmt.Printf("%-30s  %4d passes @ %.1f° forward (%.1f° reverse)\n",
			item.Field.Name, r.PassCount, r.HeadingForward, r.HeadingReverse)

		if *heading >= 0 {
			score, err := scanner.Evaluate(item.Field, *heading)
			if err != nil {
				fmt.Printf("%-30s  current heading: %v\n", "", err)
				continue
			}
			extra := score.PassCount - r.PassCount
			fmt.Printf("%-30s  current %.1f°: %d passes (%d more than optimum)\n",
				"", score.Heading, score.PassCount, extra)
		}
	}

	if best := batch.Best(); best != nil {
		fmt.Printf("\nbest overall: %s with %d passes @ %.1f° forward\n",
			best.Field.Name, best.Result.PassCount, best.Result.HeadingForward)
	} else {
		fmt.Println("\nno field optimized successfully")
	}

	if *out != "" {
		if err := fieldio.WriteResults(*out, batch); err != nil {
			log.Fatalf("fieldpath: write results: %v", err)
		}
		fmt.Printf("results written to %s\n", *out)
	}
}
