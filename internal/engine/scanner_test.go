package engine

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rplaado/fieldpath/internal/model"
)

func rectField(name string, w, h float64) model.Field {
	return model.NewField(name, orb.Polygon{{{0, 0}, {w, 0}, {w, h}, {0, h}, {0, 0}}})
}

func testSettings(width, step float64) model.ScanSettings {
	return model.ScanSettings{MachineWidth: width, AngleStep: step, Workers: 1}
}

func TestScan_Rectangle(t *testing.T) {
	// 100x60 at width 50: the short axis takes two passes and no direction
	// does better. Oblique angles also need two lines, and the line nearest
	// the bottom vertex must count even though its chord is short; an
	// undercounted oblique angle would steal the optimum from 0.
	s := New(testSettings(50, 1))

	result, err := s.Scan(rectField("paddock", 100, 60))
	require.NoError(t, err)

	assert.Equal(t, 2, result.PassCount)
	assert.Len(t, result.SwathLines, 2)
	assert.Equal(t, 0.0, result.BestAngle)
}

func TestScan_Deterministic(t *testing.T) {
	field := model.NewField("odd", orb.Polygon{{
		{0, 0}, {90, 10}, {100, 60}, {40, 85}, {-5, 55}, {0, 0},
	}})
	s := New(testSettings(18, 0.5))

	first, err := s.Scan(field)
	require.NoError(t, err)
	second, err := s.Scan(field)
	require.NoError(t, err)

	assert.Equal(t, first.BestAngle, second.BestAngle)
	assert.Equal(t, first.PassCount, second.PassCount)
	assert.Equal(t, first.SwathLines, second.SwathLines)
}

func TestScan_TieKeepsEarliestAngle(t *testing.T) {
	// A square is symmetric, so 0 and 90 degrees tie; the strict less-than
	// comparison must keep the first angle scanned.
	s := New(testSettings(15, 45))

	result, err := s.Scan(rectField("square", 40, 40))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.BestAngle)
}

func TestScan_HeadingComplementarity(t *testing.T) {
	s := New(testSettings(18, 2))

	result, err := s.Scan(rectField("paddock", 100, 60))
	require.NoError(t, err)

	diff := math.Mod(result.HeadingForward+180, 360)
	assert.InDelta(t, result.HeadingReverse, diff, 1e-9)
	assert.GreaterOrEqual(t, result.HeadingForward, 0.0)
	assert.Less(t, result.HeadingForward, 360.0)
}

func TestScan_DegenerateWidthSinglePass(t *testing.T) {
	// Machine wider than the field in every direction: one pass at any
	// angle, so the scan reports exactly one. The single candidate line
	// grazes the field's lowest vertex at non-axis angles and must still
	// register its short chord as a pass.
	s := New(testSettings(1000, 5))
	field := rectField("small", 40, 40)

	result, err := s.Scan(field)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PassCount)

	for _, heading := range []float64{5, 30, 60, 95, 120, 175} {
		score, err := s.Evaluate(field, heading)
		require.NoError(t, err, "heading %g", heading)
		assert.Equal(t, 1, score.PassCount, "heading %g", heading)
	}
}

func TestScan_SwathLinesInsideField(t *testing.T) {
	s := New(testSettings(20, 1))

	result, err := s.Scan(rectField("paddock", 100, 60))
	require.NoError(t, err)
	require.NotEmpty(t, result.SwathLines)

	for _, line := range result.SwathLines {
		for _, p := range line {
			assert.GreaterOrEqual(t, p[0], -1e-6)
			assert.LessOrEqual(t, p[0], 100+1e-6)
			assert.GreaterOrEqual(t, p[1], -1e-6)
			assert.LessOrEqual(t, p[1], 60+1e-6)
		}
	}
}

func TestScan_InvalidWidth(t *testing.T) {
	s := New(testSettings(0, 1))
	_, err := s.Scan(rectField("paddock", 100, 60))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestScan_InvalidStep(t *testing.T) {
	for _, step := range []float64{0, -1, 180, 360} {
		s := New(testSettings(10, step))
		_, err := s.Scan(rectField("paddock", 100, 60))
		assert.ErrorIs(t, err, model.ErrInvalidParameter, "step %g", step)
	}
}

func TestScan_InvalidGeometry(t *testing.T) {
	s := New(testSettings(10, 1))
	_, err := s.Scan(model.NewField("empty", orb.Polygon{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)
}

func TestScan_NoCoverage(t *testing.T) {
	// A needle tapering to a sharp apex: swept along its length, the one
	// candidate line crosses only the apex tip and its chord degenerates,
	// so that angle yields zero passes and the minimum collapses to zero.
	needle := model.NewField("needle", orb.Polygon{{
		{0, 0}, {0, 2e-8}, {-10, 1e-8}, {0, 0},
	}})
	s := New(testSettings(48, 90))
	_, err := s.Scan(needle)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNoCoverage)
}

func TestEvaluate_SquareAcrossIsFourPasses(t *testing.T) {
	// 40x40 at width 10, driving heading 0: four passes.
	s := New(testSettings(10, 1))

	score, err := s.Evaluate(rectField("square", 40, 40), 0)
	require.NoError(t, err)

	assert.Equal(t, 4, score.PassCount)
	assert.Equal(t, 0.0, score.Heading)
	assert.Len(t, score.Lines, 4)
}

func TestEvaluate_GrazingBottomLineCounted(t *testing.T) {
	// Heading 271 sweeps the 100x60 field one degree off its long axis, so
	// the bottom candidate line cuts a millimeter-scale chord next to the
	// lowest corner. That chord is a real pass, not a degenerate touch.
	s := New(testSettings(50, 1))

	score, err := s.Evaluate(rectField("paddock", 100, 60), 271)
	require.NoError(t, err)
	assert.Equal(t, 2, score.PassCount)
	assert.Len(t, score.Lines, 2)
}

func TestEvaluate_MatchesScanAtOptimum(t *testing.T) {
	s := New(testSettings(50, 1))

	result, err := s.Scan(rectField("paddock", 100, 60))
	require.NoError(t, err)

	forwardScore, err := s.Evaluate(rectField("paddock2", 100, 60), result.HeadingForward)
	require.NoError(t, err)
	assert.Equal(t, result.PassCount, forwardScore.PassCount)

	reverseScore, err := s.Evaluate(rectField("paddock3", 100, 60), result.HeadingReverse)
	require.NoError(t, err)
	assert.Equal(t, result.PassCount, reverseScore.PassCount, "reverse heading sweeps the same lines")
}

func TestEvaluate_WiderMachineNeverNeedsMorePasses(t *testing.T) {
	field := rectField("square", 40, 40)

	narrow := New(testSettings(10, 1))
	wide := New(testSettings(20, 1))

	for _, heading := range []float64{0, 30, 45, 90, 135} {
		n, err := narrow.Evaluate(field, heading)
		require.NoError(t, err)
		w, err := wide.Evaluate(field, heading)
		require.NoError(t, err)
		assert.LessOrEqual(t, w.PassCount, n.PassCount, "heading %g", heading)
	}
}

func TestEvaluate_NormalizesHeading(t *testing.T) {
	s := New(testSettings(10, 1))
	field := rectField("square", 40, 40)

	a, err := s.Evaluate(field, 370)
	require.NoError(t, err)
	b, err := s.Evaluate(field, 10)
	require.NoError(t, err)

	assert.Equal(t, b.Heading, a.Heading)
	assert.Equal(t, b.PassCount, a.PassCount)
}

func TestHeadings(t *testing.T) {
	forward, reverse := Headings(0)
	assert.InDelta(t, 270, forward, 1e-9)
	assert.InDelta(t, 90, reverse, 1e-9)

	forward, reverse = Headings(135)
	assert.InDelta(t, 45, forward, 1e-9)
	assert.InDelta(t, 225, reverse, 1e-9)

	for _, angle := range []float64{0, 12.5, 90, 179.5} {
		f, r := Headings(angle)
		assert.InDelta(t, r, math.Mod(f+180, 360), 1e-9, "angle %g", angle)
	}
}

func TestEvaluate_ConcaveFieldCountsDisjointSpans(t *testing.T) {
	// U-shaped field: sweeping across the arms, one sweep line crosses the
	// field twice and each disjoint span is its own pass.
	u := model.NewField("u", orb.Polygon{{
		{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30}, {0, 0},
	}})
	s := New(testSettings(12, 1))

	across, err := s.Evaluate(u, 90)
	require.NoError(t, err)
	assert.Equal(t, 5, across.PassCount, "two arm crossings per line above the base")

	along, err := s.Evaluate(u, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, along.PassCount, "driving along the arms avoids the split passes")
}
