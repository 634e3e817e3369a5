package model

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Field represents one closed field boundary to optimize. The boundary is a
// set of rings in a projected coordinate frame (linear units such as meters);
// interior classification is even-odd over all rings, so holes and multi-part
// boundaries are both expressed as additional rings.
type Field struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Source   string      `json:"source,omitempty"` // originating file or dataset
	Index    int         `json:"index"`            // position within the source
	Boundary orb.Polygon `json:"-"`
}

func NewField(name string, boundary orb.Polygon) Field {
	return Field{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Boundary: boundary,
	}
}

// OptimizationResult is the outcome of a full angle scan for one field.
// Immutable after creation; all line geometries are in the same coordinate
// frame as the input boundary.
type OptimizationResult struct {
	BestAngle      float64             `json:"best_angle"`      // sweep-line rotation angle, degrees in [0,180)
	PassCount      int                 `json:"pass_count"`      // number of machine passes at BestAngle
	HeadingForward float64             `json:"heading_forward"` // travel heading, degrees in [0,360)
	HeadingReverse float64             `json:"heading_reverse"` // HeadingForward + 180 mod 360
	SwathLines     orb.MultiLineString `json:"-"`
}

// HeadingScore is the result of evaluating a single caller-chosen heading,
// used for side-by-side comparison against the scanned optimum.
type HeadingScore struct {
	Heading   float64             `json:"heading"` // degrees in [0,360)
	PassCount int                 `json:"pass_count"`
	Lines     orb.MultiLineString `json:"-"`
}

// BatchItem pairs one field with its scan outcome. Exactly one of Result and
// Err is set: a failed field carries its error and is excluded from the
// batch's global best.
type BatchItem struct {
	Field  Field
	Result *OptimizationResult
	Err    error
}

// BatchResult holds the ordered per-field outcomes of a batch run plus the
// index of the globally best field (minimum pass count over all successful
// items), or -1 when no field succeeded.
type BatchResult struct {
	Items     []BatchItem
	BestIndex int
}

// Best returns the globally best item, or nil when every field failed.
func (b BatchResult) Best() *BatchItem {
	if b.BestIndex < 0 || b.BestIndex >= len(b.Items) {
		return nil
	}
	return &b.Items[b.BestIndex]
}
