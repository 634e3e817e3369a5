package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/rplaado/fieldpath/internal/model"
)

// minRingArea is the smallest loop area kept by Repair; anything below is a
// sliver left over from duplicate or collinear boundary points.
const minRingArea = 1e-9

// Repair returns a cleaned, simple version of the ring set, the analogue of
// the zero-width buffer idiom used on shapefile boundaries: consecutive
// duplicate points are dropped, rings are un-closed and re-closed
// consistently, self-crossing rings ("bowties") are split at their crossing
// points into simple loops, and degenerate loops are discarded. Rings that
// cannot be untangled, or an input with no remaining area, fail with
// model.ErrInvalidGeometry.
//
// Repair is applied once per optimization run; the result is treated as
// immutable for the remainder of the computation.
func Repair(poly orb.Polygon) (orb.Polygon, error) {
	var loops [][]orb.Point
	for _, ring := range poly {
		pts := dedupe(ring)
		if len(pts) < 3 {
			continue
		}
		simple, err := untangle(pts, 2*len(pts))
		if err != nil {
			return nil, fmt.Errorf("ring repair: %v: %w", err, model.ErrInvalidGeometry)
		}
		for _, loop := range simple {
			if len(loop) >= 3 && math.Abs(loopArea(loop)) > minRingArea {
				loops = append(loops, loop)
			}
		}
	}
	if len(loops) == 0 {
		return nil, fmt.Errorf("no polygon area after repair: %w", model.ErrInvalidGeometry)
	}

	// Largest loop first, matching the outer-ring-first convention.
	sort.Slice(loops, func(i, j int) bool {
		return math.Abs(loopArea(loops[i])) > math.Abs(loopArea(loops[j]))
	})

	out := make(orb.Polygon, len(loops))
	for i, loop := range loops {
		ring := make(orb.Ring, 0, len(loop)+1)
		ring = append(ring, loop...)
		ring = append(ring, loop[0]) // close
		out[i] = ring
	}
	return out, nil
}

// dedupe returns the ring as an open point list with the closing duplicate
// and any consecutive (near-)duplicate points removed.
func dedupe(ring orb.Ring) []orb.Point {
	pts := make([]orb.Point, 0, len(ring))
	for _, p := range ring {
		if len(pts) > 0 && samePoint(pts[len(pts)-1], p) {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 && samePoint(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func samePoint(a, b orb.Point) bool {
	return math.Abs(a[0]-b[0]) < 1e-9 && math.Abs(a[1]-b[1]) < 1e-9
}

// untangle splits a self-crossing loop at its first proper edge crossing
// into two sub-loops and recurses on both. A loop with no proper crossing
// is returned unchanged. The budget bounds the recursion so a pathological
// ring terminates with an error instead of spinning.
func untangle(pts []orb.Point, budget int) ([][]orb.Point, error) {
	if budget < 0 {
		return nil, fmt.Errorf("self-intersections do not resolve")
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share a vertex, never a proper crossing
			}
			x, ok := properCross(pts[i], pts[(i+1)%n], pts[j], pts[(j+1)%n])
			if !ok {
				continue
			}
			loopA := make([]orb.Point, 0, i+2+n-(j+1))
			loopA = append(loopA, pts[:i+1]...)
			loopA = append(loopA, x)
			loopA = append(loopA, pts[j+1:]...)

			loopB := make([]orb.Point, 0, j-i+1)
			loopB = append(loopB, x)
			loopB = append(loopB, pts[i+1:j+1]...)

			outA, err := untangle(loopA, budget-1)
			if err != nil {
				return nil, err
			}
			outB, err := untangle(loopB, budget-1)
			if err != nil {
				return nil, err
			}
			return append(outA, outB...), nil
		}
	}
	return [][]orb.Point{pts}, nil
}

// properCross reports the crossing point of segments a1-a2 and b1-b2 when
// they intersect strictly in both interiors.
func properCross(a1, a2, b1, b2 orb.Point) (orb.Point, bool) {
	dx := a2[0] - a1[0]
	dy := a2[1] - a1[1]
	ex := b2[0] - b1[0]
	ey := b2[1] - b1[1]
	denom := dx*ey - dy*ex
	if math.Abs(denom) <= 1e-12*math.Hypot(dx, dy)*math.Hypot(ex, ey) {
		return orb.Point{}, false
	}
	wx := b1[0] - a1[0]
	wy := b1[1] - a1[1]
	t := (wx*ey - wy*ex) / denom
	u := (wx*dy - wy*dx) / denom
	const interior = 1e-12
	if t <= interior || t >= 1-interior || u <= interior || u >= 1-interior {
		return orb.Point{}, false
	}
	return orb.Point{a1[0] + t*dx, a1[1] + t*dy}, true
}

func loopArea(pts []orb.Point) float64 {
	area := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return area / 2
}
