// Package geom is the 2-D geometry kernel behind the optimizer: rotation
// about a fixed origin, line/polygon clipping, centroids and polygon repair,
// all on orb vector types. Every operation is pure; callers own the inputs
// and results.
//
// Polygons are treated as even-odd ring sets: a point is inside when a ray
// from it crosses the combined ring boundary an odd number of times. Holes
// and multi-part boundaries are therefore just additional rings.
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Centroid returns the area centroid of the ring set. It is used as the
// rotation origin for one optimization run and must stay fixed for the run's
// lifetime so that forward and backward rotations cancel.
func Centroid(poly orb.Polygon) orb.Point {
	c, _ := planar.CentroidArea(poly)
	return c
}

// Contains reports whether the point is inside the polygon under the
// even-odd rule, counting ray crossings over all rings.
func Contains(poly orb.Polygon, pt orb.Point) bool {
	inside := false
	for _, ring := range poly {
		n := len(ring)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			pi, pj := ring[i], ring[j]
			if (pi[1] > pt[1]) != (pj[1] > pt[1]) &&
				pt[0] < (pj[0]-pi[0])*(pt[1]-pi[1])/(pj[1]-pi[1])+pi[0] {
				inside = !inside
			}
		}
	}
	return inside
}
