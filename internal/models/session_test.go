package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPushPopOrder(t *testing.T) {
	s := NewSession()
	s.PushPoint(TracedPoint{PixelX: 1, PixelY: 10})
	s.PushPoint(TracedPoint{PixelX: 2, PixelY: 20})
	s.AppendPoints([]TracedPoint{{PixelX: 3, PixelY: 30}, {PixelX: 4, PixelY: 40}})

	require.Equal(t, 4, s.PointCount())

	// pop-last always removes the most recent capture, whether it came
	// from a manual pick or a batch
	last, ok := s.PopPoint()
	require.True(t, ok)
	assert.Equal(t, TracedPoint{PixelX: 4, PixelY: 40}, last)

	last, ok = s.PopPoint()
	require.True(t, ok)
	assert.Equal(t, TracedPoint{PixelX: 3, PixelY: 30}, last)

	last, ok = s.PopPoint()
	require.True(t, ok)
	assert.Equal(t, TracedPoint{PixelX: 2, PixelY: 20}, last)
}

func TestSessionPopEmpty(t *testing.T) {
	s := NewSession()
	_, ok := s.PopPoint()
	assert.False(t, ok)
}

func TestSessionClearPoints(t *testing.T) {
	s := NewSession()
	s.AppendPoints([]TracedPoint{{1, 1}, {2, 2}})
	s.ClearPoints()
	assert.Zero(t, s.PointCount())
}

func TestSessionPointsIsACopy(t *testing.T) {
	s := NewSession()
	s.PushPoint(TracedPoint{PixelX: 1, PixelY: 1})

	points := s.Points()
	points[0] = TracedPoint{PixelX: 99, PixelY: 99}

	assert.Equal(t, TracedPoint{PixelX: 1, PixelY: 1}, s.Points()[0])
}

func TestSessionNewImageResetsState(t *testing.T) {
	s := NewSession()
	s.SetImage(NewRaster(4, 4), nil)

	s.PushPoint(TracedPoint{PixelX: 1, PixelY: 2})
	s.Calibration().X.SetAnchorPixel(AnchorMin, 0)
	require.NoError(t, s.Calibration().X.SetAnchorValue(AnchorMin, 5))

	// loading a new image discards calibration and traced points
	s.SetImage(NewRaster(8, 8), nil)

	assert.Zero(t, s.PointCount())
	assert.False(t, s.Calibration().X.Min.HasPixel)
	assert.Len(t, s.Calibration().MissingAnchors(), 4)
	assert.Equal(t, 8, s.Raster().Width())
}
