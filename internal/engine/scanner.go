package engine

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/rplaado/fieldpath/internal/geom"
	"github.com/rplaado/fieldpath/internal/model"
)

// Scanner runs the candidate-heading search for individual fields.
// It is a pure function of its inputs: no I/O, no shared state, and
// identical inputs always produce identical results.
type Scanner struct {
	Settings model.ScanSettings
}

func New(settings model.ScanSettings) *Scanner {
	return &Scanner{Settings: settings}
}

// Scan finds the sweep angle in [0, 180) that covers the field with the
// fewest passes. Only the half circle is searched: an angle and its
// 180-degree counterpart generate the same family of sweep lines.
//
// Ties keep the earliest (lowest) angle; the best-so-far comparison is a
// strict less-than. Parameters are validated before any geometry work.
func (s *Scanner) Scan(field model.Field) (*model.OptimizationResult, error) {
	if err := s.Settings.Validate(); err != nil {
		return nil, err
	}
	boundary, err := geom.Repair(field.Boundary)
	if err != nil {
		return nil, err
	}
	origin := geom.Centroid(boundary)

	bestCount := -1
	bestAngle := 0.0
	var bestLines orb.MultiLineString

	steps := int(math.Ceil(180 / s.Settings.AngleStep))
	for i := 0; i < steps; i++ {
		angle := float64(i) * s.Settings.AngleStep
		if angle >= 180 {
			break
		}
		count, lines := s.scanAngle(boundary, origin, angle)
		if bestCount < 0 || count < bestCount {
			bestCount = count
			bestAngle = angle
			bestLines = lines
		}
	}

	if bestCount <= 0 {
		return nil, fmt.Errorf("field %q produced no passes at any angle: %w", field.Name, model.ErrNoCoverage)
	}

	forward, reverse := Headings(bestAngle)
	return &model.OptimizationResult{
		BestAngle:      bestAngle,
		PassCount:      bestCount,
		HeadingForward: forward,
		HeadingReverse: reverse,
		SwathLines:     bestLines,
	}, nil
}

// Evaluate scores a single caller-chosen travel heading for comparison
// against the scanned optimum. Headings are compass-style travel directions;
// the +90 offset converts them to the internal sweep-line rotation
// convention. No search is performed.
func (s *Scanner) Evaluate(field model.Field, headingDeg float64) (*model.HeadingScore, error) {
	if err := s.Settings.Validate(); err != nil {
		return nil, err
	}
	boundary, err := geom.Repair(field.Boundary)
	if err != nil {
		return nil, err
	}
	origin := geom.Centroid(boundary)

	heading := normalizeDeg(headingDeg)
	count, lines := s.scanAngle(boundary, origin, normalizeDeg(heading+90))

	return &model.HeadingScore{
		Heading:   heading,
		PassCount: count,
		Lines:     lines,
	}, nil
}

// scanAngle evaluates one candidate: rotate the boundary level with the
// horizontal sweep grid, clip every sweep line, rotate the surviving spans
// back, then re-clip each against the original boundary. The second clip is
// required: the rotate/unrotate round trip is numeric and can leave span
// endpoints marginally outside the true field edge, and re-clipping bounds
// the returned swaths by the real boundary instead of rounding artifacts.
func (s *Scanner) scanAngle(boundary orb.Polygon, origin orb.Point, angleDeg float64) (int, orb.MultiLineString) {
	rotated := geom.RotatePolygon(boundary, angleDeg, origin)
	bound := rotated.Bound()
	sweeps := SweepLines(bound.Min.Y(), bound.Max.Y(), s.Settings.MachineWidth, origin.X())

	var segments []ClippedSegment
	var lines orb.MultiLineString
	for _, sweep := range sweeps {
		spans := geom.ClipLine(sweep[0], sweep[1], rotated)
		if len(spans) == 0 {
			continue
		}
		var final orb.MultiLineString
		for _, span := range spans {
			back := geom.RotateLineString(span, -angleDeg, origin)
			final = append(final, geom.ClipLine(back[0], back[1], boundary)...)
		}
		seg := Classify(final)
		segments = append(segments, seg)
		lines = append(lines, seg.Spans...)
	}
	return CountPasses(segments), lines
}

// Headings converts a sweep-line rotation angle into the forward/reverse
// travel-heading pair. Sweep lines are horizontal, so the direction of
// travel sits 90 degrees off the rotation angle; forward and reverse always
// differ by exactly 180 modulo 360.
func Headings(sweepAngle float64) (forward, reverse float64) {
	forward = normalizeDeg(sweepAngle - 90)
	reverse = normalizeDeg(forward + 180)
	return forward, reverse
}

func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
