package geom

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

const (
	// paramEps is the tolerance on normalized segment parameters.
	paramEps = 1e-9
	// minSpanLength is the shortest clipped span (in coordinate units) that
	// counts as coverage; anything shorter is a degenerate point touch.
	// Well above coordinate rounding noise, well below any chord a biased
	// sweep line cuts through the interior.
	minSpanLength = 1e-9
)

// ClipLine intersects the segment a-b with the polygon interior and returns
// the covered spans, ordered along the segment. A result that collapses to
// (near) a single point contributes nothing, and a segment crossing a
// non-convex boundary several times yields several disjoint spans.
//
// The segment is cut at every boundary crossing and each piece is kept or
// dropped by testing its midpoint against the even-odd interior.
func ClipLine(a, b orb.Point, poly orb.Polygon) orb.MultiLineString {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	length := math.Hypot(dx, dy)
	if length == 0 || len(poly) == 0 {
		return nil
	}

	cuts := []float64{0, 1}
	for _, ring := range poly {
		n := len(ring)
		for i := 0; i < n; i++ {
			p := ring[i]
			q := ring[(i+1)%n]
			cuts = appendCrossings(cuts, a, dx, dy, p, q)
		}
	}

	sort.Float64s(cuts)

	var spans orb.MultiLineString
	runStart := -1.0
	prev := cuts[0]
	for _, t := range cuts[1:] {
		// Merge by span length, not parameter gap: on a long segment a tiny
		// parameter gap can still be a real chord.
		if (t-prev)*length < minSpanLength {
			continue
		}
		mid := orb.Point{a[0] + dx*(prev+t)/2, a[1] + dy*(prev+t)/2}
		if Contains(poly, mid) {
			if runStart < 0 {
				runStart = prev
			}
		} else if runStart >= 0 {
			spans = appendSpan(spans, a, dx, dy, runStart, prev, length)
			runStart = -1
		}
		prev = t
	}
	if runStart >= 0 {
		spans = appendSpan(spans, a, dx, dy, runStart, prev, length)
	}
	return spans
}

func appendSpan(spans orb.MultiLineString, a orb.Point, dx, dy, t0, t1, length float64) orb.MultiLineString {
	if (t1-t0)*length < minSpanLength {
		return spans
	}
	return append(spans, orb.LineString{
		{a[0] + dx*t0, a[1] + dy*t0},
		{a[0] + dx*t1, a[1] + dy*t1},
	})
}

// appendCrossings adds the parameters (along the a+t*(dx,dy) segment) where
// it meets the edge p-q. Collinear overlaps contribute both edge endpoints
// so the midpoint test can settle the pieces in between.
func appendCrossings(cuts []float64, a orb.Point, dx, dy float64, p, q orb.Point) []float64 {
	ex := q[0] - p[0]
	ey := q[1] - p[1]
	wx := p[0] - a[0]
	wy := p[1] - a[1]

	denom := dx*ey - dy*ex
	segLen := math.Hypot(dx, dy)
	edgeLen := math.Hypot(ex, ey)
	if edgeLen == 0 {
		return cuts
	}

	if math.Abs(denom) <= 1e-12*segLen*edgeLen {
		// Parallel. Only a collinear edge produces crossings.
		if math.Abs(wx*dy-wy*dx) > 1e-9*segLen*edgeLen {
			return cuts
		}
		d2 := dx*dx + dy*dy
		for _, pt := range []orb.Point{p, q} {
			t := ((pt[0]-a[0])*dx + (pt[1]-a[1])*dy) / d2
			if t >= -paramEps && t <= 1+paramEps {
				cuts = append(cuts, clamp01(t))
			}
		}
		return cuts
	}

	t := (wx*ey - wy*ex) / denom
	u := (wx*dy - wy*dx) / denom
	if t < -paramEps || t > 1+paramEps || u < -paramEps || u > 1+paramEps {
		return cuts
	}
	return append(cuts, clamp01(t))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
