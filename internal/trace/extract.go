// Package trace implements the point-reconstruction engine: turning a
// raster into candidate pixel-space points by color proximity, and
// turning traced points into real-world values through the axis
// calibrations.
package trace

import (
	"math"

	"carbontrace/internal/models"
)

// ColorTarget is an RGB color with 8-bit components, as entered by the
// user.
type ColorTarget struct {
	R int
	G int
	B int
}

// ExtractByColor scans the raster for pixels within tolerancePercent
// of the target color and collapses matches to one candidate point per
// matching column: x is the column index, y the arithmetic mean of the
// matching row indices. Output is ordered by ascending column.
//
// The collapse makes the result a single-valued function of the
// horizontal axis, which is what line-chart digitization wants; it
// also means vertical or multi-valued features are averaged into a
// single point per column. That is intentional, and downstream CSV
// consumers rely on the one-point-per-column shape.
//
// Tolerance is a fraction of full scale in normalized RGB space: a
// tolerance of 10 accepts Euclidean distances up to 0.10 inside the
// [0,1]^3 cube. The comparison is inclusive, so zero tolerance still
// accepts exact matches.
func ExtractByColor(raster *models.Raster, target ColorTarget, tolerancePercent float64) ([]models.TracedPoint, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if math.IsNaN(tolerancePercent) || math.IsInf(tolerancePercent, 0) || tolerancePercent < 0 {
		return nil, models.NewInvalidInputError(
			"tolerance", models.FormatValue(tolerancePercent),
			"tolerance must be a non-negative finite percentage",
		)
	}

	tr := float64(target.R) / 255.0
	tg := float64(target.G) / 255.0
	tb := float64(target.B) / 255.0
	threshold := tolerancePercent / 100.0

	var points []models.TracedPoint
	for x := 0; x < raster.Width(); x++ {
		rowSum := 0.0
		matches := 0
		for y := 0; y < raster.Height(); y++ {
			r, g, b := raster.At(x, y)
			dr, dg, db := r-tr, g-tg, b-tb
			if math.Sqrt(dr*dr+dg*dg+db*db) <= threshold {
				rowSum += float64(y)
				matches++
			}
		}
		if matches > 0 {
			points = append(points, models.TracedPoint{
				PixelX: float64(x),
				PixelY: rowSum / float64(matches),
			})
		}
	}
	return points, nil
}

func validateTarget(target ColorTarget) error {
	components := []struct {
		name  string
		value int
	}{
		{"R", target.R},
		{"G", target.G},
		{"B", target.B},
	}
	for _, c := range components {
		if c.value < 0 || c.value > 255 {
			return models.NewInvalidInputError(
				c.name, models.FormatValue(float64(c.value)),
				"color component must be in 0..255",
			)
		}
	}
	return nil
}
