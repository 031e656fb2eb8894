package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"carbontrace/internal/models"
)

type anchorRow struct {
	capture *widget.Button
	value   *widget.Entry
	status  *widget.Label
}

// CalibrationPanel holds the four anchor rows and the per-axis scale
// selectors. Anchors are addressed by explicit axis/anchor
// identifiers, never by widget-name lookup.
type CalibrationPanel struct {
	container *fyne.Container

	xMin anchorRow
	xMax anchorRow
	yMin anchorRow
	yMax anchorRow

	onCapture func(axis models.Axis, id models.AnchorID)
	onValue   func(axis models.Axis, id models.AnchorID, text string)
	onScale   func(axis models.Axis, scale models.ScaleKind)
}

func NewCalibrationPanel() *CalibrationPanel {
	cp := &CalibrationPanel{}

	cp.xMin = cp.newAnchorRow("Set X Min", models.AxisX, models.AnchorMin)
	cp.xMax = cp.newAnchorRow("Set X Max", models.AxisX, models.AnchorMax)
	cp.yMin = cp.newAnchorRow("Set Y Min", models.AxisY, models.AnchorMin)
	cp.yMax = cp.newAnchorRow("Set Y Max", models.AxisY, models.AnchorMax)

	xScale := cp.newScaleGroup(models.AxisX)
	yScale := cp.newScaleGroup(models.AxisY)

	cp.container = container.NewVBox(
		widget.NewLabel("Calibration"),
		cp.rowContainer(cp.xMin),
		cp.rowContainer(cp.xMax),
		cp.rowContainer(cp.yMin),
		cp.rowContainer(cp.yMax),
		container.NewHBox(widget.NewLabel("X scale:"), xScale),
		container.NewHBox(widget.NewLabel("Y scale:"), yScale),
	)
	return cp
}

func (cp *CalibrationPanel) newAnchorRow(label string, axis models.Axis, id models.AnchorID) anchorRow {
	row := anchorRow{
		value:  widget.NewEntry(),
		status: widget.NewLabel("✗"),
	}
	row.value.SetPlaceHolder("Value...")
	row.capture = widget.NewButton(label, func() {
		if cp.onCapture != nil {
			cp.onCapture(axis, id)
		}
	})
	row.value.OnSubmitted = func(text string) {
		if cp.onValue != nil {
			cp.onValue(axis, id, text)
		}
	}
	return row
}

func (cp *CalibrationPanel) newScaleGroup(axis models.Axis) *widget.RadioGroup {
	group := widget.NewRadioGroup([]string{"Linear", "Log"}, func(selected string) {
		if cp.onScale == nil {
			return
		}
		scale := models.ScaleLinear
		if selected == "Log" {
			scale = models.ScaleLogarithmic
		}
		cp.onScale(axis, scale)
	})
	group.Horizontal = true
	group.SetSelected("Linear")
	return group
}

func (cp *CalibrationPanel) rowContainer(row anchorRow) *fyne.Container {
	return container.NewBorder(nil, nil, row.capture, row.status, row.value)
}

func (cp *CalibrationPanel) GetContainer() *fyne.Container {
	return cp.container
}

func (cp *CalibrationPanel) SetCaptureHandler(handler func(models.Axis, models.AnchorID)) {
	cp.onCapture = handler
}

func (cp *CalibrationPanel) SetValueHandler(handler func(models.Axis, models.AnchorID, string)) {
	cp.onValue = handler
}

func (cp *CalibrationPanel) SetScaleHandler(handler func(models.Axis, models.ScaleKind)) {
	cp.onScale = handler
}

// SetAnchorCaptured flips the pixel-capture indicator for one anchor.
func (cp *CalibrationPanel) SetAnchorCaptured(axis models.Axis, id models.AnchorID, captured bool) {
	row := cp.row(axis, id)
	if captured {
		row.status.SetText("✓")
	} else {
		row.status.SetText("✗")
	}
}

// Reset clears all indicators and value entries, used after a new
// image load discards the previous calibration.
func (cp *CalibrationPanel) Reset() {
	for _, row := range []anchorRow{cp.xMin, cp.xMax, cp.yMin, cp.yMax} {
		row.status.SetText("✗")
		row.value.SetText("")
	}
}

func (cp *CalibrationPanel) row(axis models.Axis, id models.AnchorID) anchorRow {
	if axis == models.AxisX {
		if id == models.AnchorMin {
			return cp.xMin
		}
		return cp.xMax
	}
	if id == models.AnchorMin {
		return cp.yMin
	}
	return cp.yMax
}
