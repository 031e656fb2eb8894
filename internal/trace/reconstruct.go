package trace

import (
	"carbontrace/internal/models"
)

// DataPoint is one reconstructed observation in real-world units.
type DataPoint struct {
	X float64
	Y float64
}

// ReconstructAll converts the traced-point sequence into real-world
// values using both axis calibrations. Reconstruction is
// all-or-nothing: the calibration is validated up front with every
// missing anchor enumerated, and a domain failure on any point aborts
// the whole batch. Output order equals input order.
func ReconstructAll(points []models.TracedPoint, calibration *models.CalibrationSet) ([]DataPoint, error) {
	if missing := calibration.MissingAnchors(); len(missing) > 0 {
		return nil, models.NewCalibrationIncompleteError(missing)
	}

	series := make([]DataPoint, 0, len(points))
	for _, p := range points {
		x, err := calibration.X.ToRealValue(p.PixelX)
		if err != nil {
			return nil, err
		}
		y, err := calibration.Y.ToRealValue(p.PixelY)
		if err != nil {
			return nil, err
		}
		series = append(series, DataPoint{X: x, Y: y})
	}
	return series, nil
}
