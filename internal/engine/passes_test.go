package engine

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func span(x0, x1, y float64) orb.LineString {
	return orb.LineString{{x0, y}, {x1, y}}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, SegmentEmpty, Classify(nil).Kind)
	assert.Equal(t, SegmentEmpty, Classify(orb.MultiLineString{}).Kind)
	assert.Equal(t, SegmentSingle, Classify(orb.MultiLineString{span(0, 10, 5)}).Kind)
	assert.Equal(t, SegmentMulti, Classify(orb.MultiLineString{span(0, 3, 5), span(7, 10, 5)}).Kind)
}

func TestCountPasses(t *testing.T) {
	segments := []ClippedSegment{
		Classify(nil), // 0
		Classify(orb.MultiLineString{span(0, 10, 5)}),                              // 1
		Classify(orb.MultiLineString{span(0, 3, 6), span(7, 10, 6)}),               // 2
		Classify(orb.MultiLineString{span(0, 1, 7), span(2, 3, 7), span(4, 5, 7)}), // 3
	}
	assert.Equal(t, 6, CountPasses(segments))
}

func TestCountPasses_Empty(t *testing.T) {
	assert.Equal(t, 0, CountPasses(nil))
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "Empty", SegmentEmpty.String())
	assert.Equal(t, "Single", SegmentSingle.String())
	assert.Equal(t, "Multi", SegmentMulti.String())
}
