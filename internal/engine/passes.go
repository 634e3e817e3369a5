package engine

import "github.com/paulmach/orb"

// SegmentKind tags the shape of one sweep line clipped against the field.
type SegmentKind int

const (
	SegmentEmpty  SegmentKind = iota // no overlap, or a degenerate point touch
	SegmentSingle                    // one contiguous span
	SegmentMulti                     // several disjoint spans across a non-convex field
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentSingle:
		return "Single"
	case SegmentMulti:
		return "Multi"
	default:
		return "Empty"
	}
}

// ClippedSegment is the tagged result of clipping one sweep line. Spans is
// nil for SegmentEmpty. Degenerate intersections that collapse to a point
// are already dropped by the kernel and therefore classify as Empty.
type ClippedSegment struct {
	Kind  SegmentKind
	Spans orb.MultiLineString
}

// Classify tags the spans left from clipping one sweep line.
func Classify(spans orb.MultiLineString) ClippedSegment {
	switch len(spans) {
	case 0:
		return ClippedSegment{Kind: SegmentEmpty}
	case 1:
		return ClippedSegment{Kind: SegmentSingle, Spans: spans}
	default:
		return ClippedSegment{Kind: SegmentMulti, Spans: spans}
	}
}

// CountPasses reduces clipped segments to a machine pass count: Empty adds
// nothing, Single adds one, Multi adds one per disjoint span.
func CountPasses(segments []ClippedSegment) int {
	total := 0
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentEmpty:
			// no coverage
		case SegmentSingle:
			total++
		case SegmentMulti:
			total += len(seg.Spans)
		}
	}
	return total
}
