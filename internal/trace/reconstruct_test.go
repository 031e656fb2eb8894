package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbontrace/internal/models"
)

func calibrated(t *testing.T) *models.CalibrationSet {
	t.Helper()
	cs := models.NewCalibrationSet()
	cs.X.SetAnchorPixel(models.AnchorMin, 0)
	cs.X.SetAnchorPixel(models.AnchorMax, 100)
	require.NoError(t, cs.X.SetAnchorValue(models.AnchorMin, 0))
	require.NoError(t, cs.X.SetAnchorValue(models.AnchorMax, 50))
	cs.Y.SetAnchorPixel(models.AnchorMin, 200)
	cs.Y.SetAnchorPixel(models.AnchorMax, 0)
	require.NoError(t, cs.Y.SetAnchorValue(models.AnchorMin, 0))
	require.NoError(t, cs.Y.SetAnchorValue(models.AnchorMax, 100))
	return cs
}

func TestReconstructAllOrderPreserved(t *testing.T) {
	cs := calibrated(t)
	points := []models.TracedPoint{
		{PixelX: 100, PixelY: 0},
		{PixelX: 0, PixelY: 200},
		{PixelX: 50, PixelY: 100},
	}

	series, err := ReconstructAll(points, cs)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.InDelta(t, 50, series[0].X, 1e-12)
	assert.InDelta(t, 100, series[0].Y, 1e-12)
	assert.InDelta(t, 0, series[1].X, 1e-12)
	assert.InDelta(t, 0, series[1].Y, 1e-12)
	assert.InDelta(t, 25, series[2].X, 1e-12)
	assert.InDelta(t, 50, series[2].Y, 1e-12)
}

func TestReconstructAllEmptyInput(t *testing.T) {
	series, err := ReconstructAll(nil, calibrated(t))
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestReconstructAllIncompleteCalibration(t *testing.T) {
	cs := calibrated(t)
	cs.Y.Max.HasValue = false // drop one field again

	_, err := ReconstructAll([]models.TracedPoint{{PixelX: 1, PixelY: 1}}, cs)
	var incomplete *models.CalibrationIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"Y Max"}, incomplete.Missing)
}

func TestReconstructAllEnumeratesEveryMissingAnchor(t *testing.T) {
	cs := models.NewCalibrationSet()
	cs.X.SetAnchorPixel(models.AnchorMin, 0)
	require.NoError(t, cs.X.SetAnchorValue(models.AnchorMin, 0))

	_, err := ReconstructAll(nil, cs)
	var incomplete *models.CalibrationIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"X Max", "Y Min", "Y Max"}, incomplete.Missing)
}

func TestReconstructAllDomainErrorAbortsBatch(t *testing.T) {
	cs := calibrated(t)
	cs.X.SetAnchorPixel(models.AnchorMax, 0) // collapse the pixel span

	series, err := ReconstructAll([]models.TracedPoint{
		{PixelX: 10, PixelY: 10},
		{PixelX: 20, PixelY: 20},
	}, cs)

	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Nil(t, series, "reconstruction is all-or-nothing")
}
