package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// RotatePoint rotates p by angleDeg (counter-clockwise, degrees) about the
// given origin.
func RotatePoint(p orb.Point, angleDeg float64, about orb.Point) orb.Point {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return rotatePoint(p, sin, cos, about)
}

// RotateLineString rotates every vertex of the line about the origin.
func RotateLineString(ls orb.LineString, angleDeg float64, about orb.Point) orb.LineString {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	out := make(orb.LineString, len(ls))
	for i, p := range ls {
		out[i] = rotatePoint(p, sin, cos, about)
	}
	return out
}

// RotateMultiLineString rotates every line in the collection about the origin.
func RotateMultiLineString(mls orb.MultiLineString, angleDeg float64, about orb.Point) orb.MultiLineString {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	out := make(orb.MultiLineString, len(mls))
	for i, ls := range mls {
		line := make(orb.LineString, len(ls))
		for j, p := range ls {
			line[j] = rotatePoint(p, sin, cos, about)
		}
		out[i] = line
	}
	return out
}

// RotatePolygon rotates every ring of the polygon about the origin.
func RotatePolygon(poly orb.Polygon, angleDeg float64, about orb.Point) orb.Polygon {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	out := make(orb.Polygon, len(poly))
	for i, ring := range poly {
		r := make(orb.Ring, len(ring))
		for j, p := range ring {
			r[j] = rotatePoint(p, sin, cos, about)
		}
		out[i] = r
	}
	return out
}

func rotatePoint(p orb.Point, sin, cos float64, about orb.Point) orb.Point {
	dx := p[0] - about[0]
	dy := p[1] - about[1]
	return orb.Point{
		about[0] + dx*cos - dy*sin,
		about[1] + dx*sin + dy*cos,
	}
}
