package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	axisLabel   *widget.Label
	pointsLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready. Load a graph to begin.")
	axisLabel := widget.NewLabel("X: ✗  Y: ✗")
	pointsLabel := widget.NewLabel("Points: 0")

	metricsContainer := container.NewHBox(
		axisLabel,
		widget.NewSeparator(),
		pointsLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		metricsContainer,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		axisLabel:   axisLabel,
		pointsLabel: pointsLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetAxisState shows per-axis calibration completeness.
func (sb *StatusBar) SetAxisState(xComplete, yComplete bool) {
	sb.axisLabel.SetText(fmt.Sprintf("X: %s  Y: %s", mark(xComplete), mark(yComplete)))
}

func (sb *StatusBar) SetPointCount(count int) {
	sb.pointsLabel.SetText(fmt.Sprintf("Points: %d", count))
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
