package engine

import (
	"math"

	"github.com/paulmach/orb"
)

// sweepHalfSpan is the horizontal half-extent of generated sweep lines.
// Any value longer than a field's diameter guarantees full coverage at every
// rotation; field boundaries are far smaller than 100 km across.
const sweepHalfSpan = 1e5

// gridBias is the upward shift of the sweep grid as a fraction of the finer
// of the spacing and the extent height: large against rounding noise and
// against the clipper's degenerate-span cutoff, negligible against a swath.
// Scaling by the extent as well keeps the shift inside the extent even when
// the spacing dwarfs the field.
const gridBias = 1e-6

// SweepLines returns the ordered horizontal candidate lines for one rotated
// field extent: starting at yMin - 2*spacing and stepping by spacing until
// past yMax + 2*spacing. The two-spacing margin on each end absorbs boundary
// rounding so edge-adjacent slivers of the field are not missed.
//
// Each position is computed as yStart + i*spacing from an integer index
// rather than by accumulating spacing, so no floating-point error builds up
// across steps, and the index bound guarantees termination.
//
// The whole grid is shifted upward by gridBias. The grid is anchored on
// yMin, so an unshifted grid always puts one line exactly on the extent
// boundary, where a tangent intersection flips between a point and a
// boundary-length segment on rounding noise. The shift keeps every line
// strictly off the extent edges: the bottom line cuts a real interior chord
// long enough to survive clipping, and a line landing exactly on yMax moves
// off it. Both ends of the grid shift together, so the line count matches
// the unshifted grid's.
func SweepLines(yMin, yMax, spacing, centerX float64) []orb.LineString {
	if spacing <= 0 || yMax < yMin {
		return nil
	}
	bias := gridBias * math.Min(spacing, yMax-yMin)
	yStart := yMin - 2*spacing + bias
	yStop := yMax + 2*spacing + bias
	maxSteps := int(math.Ceil((yMax-yMin+4*spacing)/spacing)) + 1

	lines := make([]orb.LineString, 0, maxSteps)
	for i := 0; i < maxSteps; i++ {
		y := yStart + float64(i)*spacing
		if y > yStop {
			break
		}
		lines = append(lines, orb.LineString{
			{centerX - sweepHalfSpan, y},
			{centerX + sweepHalfSpan, y},
		})
	}
	return lines
}
