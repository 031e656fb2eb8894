package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeAxis(t *testing.T, axis *AxisCalibration, pMin, pMax, vMin, vMax float64) {
	t.Helper()
	axis.SetAnchorPixel(AnchorMin, pMin)
	axis.SetAnchorPixel(AnchorMax, pMax)
	require.NoError(t, axis.SetAnchorValue(AnchorMin, vMin))
	require.NoError(t, axis.SetAnchorValue(AnchorMax, vMax))
}

func TestLinearMapping(t *testing.T) {
	cs := NewCalibrationSet()
	completeAxis(t, &cs.X, 0, 100, 0, 50)

	cases := []struct {
		pixel float64
		want  float64
	}{
		{0, 0},
		{100, 50},
		{50, 25},
		{25, 12.5},
		{-50, -25}, // extrapolation past the anchors is well defined
	}
	for _, tc := range cases {
		got, err := cs.X.ToRealValue(tc.pixel)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "pixel %v", tc.pixel)
	}
}

func TestLinearMappingInvertedPixelAxis(t *testing.T) {
	// Screen rows grow downward, so the Y axis routinely has
	// pMin > pMax. The affine form handles it without special cases.
	cs := NewCalibrationSet()
	completeAxis(t, &cs.Y, 400, 100, 0, 30)

	got, err := cs.Y.ToRealValue(250)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, 1e-12)
}

func TestLogMapping(t *testing.T) {
	cs := NewCalibrationSet()
	completeAxis(t, &cs.Y, 0, 3, 1, 1000)
	cs.Y.Scale = ScaleLogarithmic

	for _, tc := range []struct {
		pixel float64
		want  float64
	}{
		{0, 1},
		{1, 10},
		{2, 100},
		{3, 1000},
	} {
		got, err := cs.Y.ToRealValue(tc.pixel)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9, "pixel %v", tc.pixel)
	}
}

func TestZeroPixelSpanRejected(t *testing.T) {
	cs := NewCalibrationSet()
	completeAxis(t, &cs.X, 42, 42, 0, 10)

	got, err := cs.X.ToRealValue(42)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, AxisX, domainErr.Axis)
	// never an Inf/NaN sentinel
	assert.False(t, math.IsInf(got, 0))
	assert.False(t, math.IsNaN(got))
}

func TestLogScaleNonPositiveBoundsRejected(t *testing.T) {
	for _, vMin := range []float64{0, -1} {
		cs := NewCalibrationSet()
		completeAxis(t, &cs.X, 0, 100, vMin, 1000)
		cs.X.Scale = ScaleLogarithmic

		_, err := cs.X.ToRealValue(50)
		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr, "vMin=%v", vMin)
	}
}

func TestIncompleteAxisRejected(t *testing.T) {
	cs := NewCalibrationSet()
	cs.X.SetAnchorPixel(AnchorMin, 0)
	cs.X.SetAnchorPixel(AnchorMax, 100)
	require.NoError(t, cs.X.SetAnchorValue(AnchorMin, 0))
	// X Max value never entered

	_, err := cs.X.ToRealValue(10)
	var incomplete *CalibrationIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"X Max"}, incomplete.Missing)
}

func TestMissingAnchorsEnumeration(t *testing.T) {
	cs := NewCalibrationSet()
	assert.Equal(t, []string{"X Min", "X Max", "Y Min", "Y Max"}, cs.MissingAnchors())

	completeAxis(t, &cs.X, 0, 100, 0, 50)
	cs.Y.SetAnchorPixel(AnchorMin, 0)
	require.NoError(t, cs.Y.SetAnchorValue(AnchorMin, 0))
	cs.Y.SetAnchorPixel(AnchorMax, 300)
	// only the Y Max value is missing
	assert.Equal(t, []string{"Y Max"}, cs.MissingAnchors())

	require.NoError(t, cs.Y.SetAnchorValue(AnchorMax, 75))
	assert.Empty(t, cs.MissingAnchors())
	assert.True(t, cs.IsComplete())
}

func TestSetAnchorValueRejectsNonFinite(t *testing.T) {
	cs := NewCalibrationSet()
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := cs.X.SetAnchorValue(AnchorMin, bad)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.False(t, cs.X.Min.HasValue, "rejected value must not be stored")
	}
}

func TestScaleChangeKeepsAnchors(t *testing.T) {
	cs := NewCalibrationSet()
	completeAxis(t, &cs.X, 0, 3, 1, 1000)

	linear, err := cs.X.ToRealValue(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 500.5, linear, 1e-9)

	cs.X.Scale = ScaleLogarithmic
	logValue, err := cs.X.ToRealValue(1.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(10, 1.5), logValue, 1e-9)

	// anchors untouched by the reinterpretation
	assert.True(t, cs.X.IsComplete())
	assert.Equal(t, 1.0, cs.X.Min.Value)
	assert.Equal(t, 1000.0, cs.X.Max.Value)
}

func TestRecalibrationOverwrites(t *testing.T) {
	cs := NewCalibrationSet()
	completeAxis(t, &cs.X, 0, 100, 0, 50)

	cs.X.SetAnchorPixel(AnchorMax, 200)
	got, err := cs.X.ToRealValue(200)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got, 1e-12)
}
