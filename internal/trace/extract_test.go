package trace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbontrace/internal/models"
)

// fillRaster paints the whole raster white, then applies the given
// target-colored pixels.
func fillRaster(width, height int, target ColorTarget, marks [][2]int) *models.Raster {
	raster := models.NewRaster(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			raster.Set(x, y, 1, 1, 1)
		}
	}
	r := float64(target.R) / 255.0
	g := float64(target.G) / 255.0
	b := float64(target.B) / 255.0
	for _, mark := range marks {
		raster.Set(mark[0], mark[1], r, g, b)
	}
	return raster
}

func TestExtractByColorDeterminism(t *testing.T) {
	target := ColorTarget{R: 255, G: 0, B: 0}
	// column 0 matches at rows 0 and 2, column 1 at row 1, column 2 never
	raster := fillRaster(3, 3, target, [][2]int{{0, 0}, {0, 2}, {1, 1}})

	points, err := ExtractByColor(raster, target, 0)
	require.NoError(t, err)

	assert.Equal(t, []models.TracedPoint{
		{PixelX: 0, PixelY: 1.0}, // (0+2)/2
		{PixelX: 1, PixelY: 1.0},
	}, points)
}

func TestExtractByColorZeroToleranceAcceptsExactMatch(t *testing.T) {
	target := ColorTarget{R: 17, G: 200, B: 9}
	raster := fillRaster(2, 2, target, [][2]int{{1, 0}})

	points, err := ExtractByColor(raster, target, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, models.TracedPoint{PixelX: 1, PixelY: 0}, points[0])
}

func TestExtractByColorToleranceThreshold(t *testing.T) {
	// target black; one pixel at gray 0.05 per channel, distance
	// sqrt(3)*0.05 ≈ 0.0866
	raster := models.NewRaster(1, 2)
	raster.Set(0, 0, 1, 1, 1)
	raster.Set(0, 1, 0.05, 0.05, 0.05)
	target := ColorTarget{R: 0, G: 0, B: 0}

	points, err := ExtractByColor(raster, target, 5) // threshold 0.05
	require.NoError(t, err)
	assert.Empty(t, points)

	points, err = ExtractByColor(raster, target, 10) // threshold 0.10
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, models.TracedPoint{PixelX: 0, PixelY: 1}, points[0])
}

func TestExtractByColorColumnMeanCollapsesVerticalRuns(t *testing.T) {
	target := ColorTarget{R: 0, G: 128, B: 255}
	// a vertical run in one column collapses to its mean row
	raster := fillRaster(2, 5, target, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	points, err := ExtractByColor(raster, target, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, models.TracedPoint{PixelX: 0, PixelY: 2.0}, points[0])
}

func TestExtractByColorValidation(t *testing.T) {
	raster := models.NewRaster(1, 1)

	cases := []struct {
		name      string
		target    ColorTarget
		tolerance float64
	}{
		{"negative component", ColorTarget{R: -1}, 10},
		{"component above 255", ColorTarget{G: 256}, 10},
		{"negative tolerance", ColorTarget{}, -1},
		{"NaN tolerance", ColorTarget{}, math.NaN()},
		{"infinite tolerance", ColorTarget{}, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractByColor(raster, tc.target, tc.tolerance)
			var invalid *models.InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestExtractByColorNoMatches(t *testing.T) {
	raster := fillRaster(3, 3, ColorTarget{R: 255, G: 255, B: 255}, nil)

	points, err := ExtractByColor(raster, ColorTarget{R: 0, G: 0, B: 0}, 1)
	require.NoError(t, err)
	assert.Empty(t, points)
}
