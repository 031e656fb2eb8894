package models

import (
	"math"
	"strconv"
)

// Axis identifies which chart axis a calibration belongs to.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "Y"
	}
	return "X"
}

// AnchorID identifies one of the two calibration anchors of an axis.
type AnchorID int

const (
	AnchorMin AnchorID = iota
	AnchorMax
)

func (id AnchorID) String() string {
	if id == AnchorMax {
		return "Max"
	}
	return "Min"
}

// ScaleKind selects linear or logarithmic interpretation of an axis's
// value range. Changing it reinterprets stored values; it never
// touches stored pixels.
type ScaleKind int

const (
	ScaleLinear ScaleKind = iota
	ScaleLogarithmic
)

func (s ScaleKind) String() string {
	if s == ScaleLogarithmic {
		return "logarithmic"
	}
	return "linear"
}

// AxisAnchor is one pixel-to-value correspondence for one axis
// extreme. Pixel and Value are captured independently and both must be
// present before the axis can map pixels to values.
type AxisAnchor struct {
	Pixel    float64
	Value    float64
	HasPixel bool
	HasValue bool
}

func (a AxisAnchor) complete() bool {
	return a.HasPixel && a.HasValue
}

// AxisCalibration holds the two anchors and scale kind for one axis
// and maps pixel coordinates on that axis to real-world values.
type AxisCalibration struct {
	axis  Axis
	Min   AxisAnchor
	Max   AxisAnchor
	Scale ScaleKind
}

func (c *AxisCalibration) Axis() Axis {
	return c.axis
}

// SetAnchorPixel records the pixel location of one anchor. The stored
// value, if any, is kept; re-calibration overwrites the pixel.
func (c *AxisCalibration) SetAnchorPixel(id AnchorID, pixel float64) {
	anchor := c.anchor(id)
	anchor.Pixel = pixel
	anchor.HasPixel = true
}

// SetAnchorValue records the real-world value of one anchor. Non-finite
// values are rejected and leave the anchor unchanged.
func (c *AxisCalibration) SetAnchorValue(id AnchorID, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewInvalidInputError(
			anchorName(c.axis, id),
			formatFloat(value),
			"value must be a finite number",
		)
	}
	anchor := c.anchor(id)
	anchor.Value = value
	anchor.HasValue = true
	return nil
}

func (c *AxisCalibration) anchor(id AnchorID) *AxisAnchor {
	if id == AnchorMax {
		return &c.Max
	}
	return &c.Min
}

// IsComplete reports whether both anchors have pixel and value.
func (c *AxisCalibration) IsComplete() bool {
	return c.Min.complete() && c.Max.complete()
}

func (c *AxisCalibration) missing() []string {
	var missing []string
	if !c.Min.complete() {
		missing = append(missing, anchorName(c.axis, AnchorMin))
	}
	if !c.Max.complete() {
		missing = append(missing, anchorName(c.axis, AnchorMax))
	}
	return missing
}

// ToRealValue maps a pixel coordinate on this axis to a real-world
// value. For the logarithmic scale the anchor values are mapped
// through log10, the affine transform is applied in log space, and
// the result is exponentiated back.
func (c *AxisCalibration) ToRealValue(pixel float64) (float64, error) {
	if !c.IsComplete() {
		return 0, NewCalibrationIncompleteError(c.missing())
	}

	pMin, pMax := c.Min.Pixel, c.Max.Pixel
	if pMin == pMax {
		return 0, NewDomainError(c.axis, "zero pixel span between anchors")
	}

	vMin, vMax := c.Min.Value, c.Max.Value
	if c.Scale == ScaleLogarithmic {
		if vMin <= 0 || vMax <= 0 {
			return 0, NewDomainError(c.axis, "logarithmic scale requires strictly positive anchor values")
		}
		vMin = math.Log10(vMin)
		vMax = math.Log10(vMax)
	}

	value := vMin + (pixel-pMin)*(vMax-vMin)/(pMax-pMin)

	if c.Scale == ScaleLogarithmic {
		value = math.Pow(10, value)
	}
	return value, nil
}

// CalibrationSet is the pair of axis calibrations owned by a session.
type CalibrationSet struct {
	X AxisCalibration
	Y AxisCalibration
}

func NewCalibrationSet() *CalibrationSet {
	return &CalibrationSet{
		X: AxisCalibration{axis: AxisX, Scale: ScaleLinear},
		Y: AxisCalibration{axis: AxisY, Scale: ScaleLinear},
	}
}

// ForAxis returns the calibration for the given axis.
func (cs *CalibrationSet) ForAxis(axis Axis) *AxisCalibration {
	if axis == AxisY {
		return &cs.Y
	}
	return &cs.X
}

// IsComplete reports whether both axes are fully calibrated.
func (cs *CalibrationSet) IsComplete() bool {
	return cs.X.IsComplete() && cs.Y.IsComplete()
}

// MissingAnchors lists every unset anchor by display name, always in
// X Min, X Max, Y Min, Y Max order so failures enumerate the complete
// set rather than the first one found.
func (cs *CalibrationSet) MissingAnchors() []string {
	missing := cs.X.missing()
	return append(missing, cs.Y.missing()...)
}

func anchorName(axis Axis, id AnchorID) string {
	return axis.String() + " " + id.String()
}

// FormatValue renders a float the way exported values are written:
// Go's shortest representation that round-trips exactly.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloat(v float64) string {
	return FormatValue(v)
}
