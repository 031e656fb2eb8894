// Package gui assembles the Fyne surface: the clickable plot display,
// the calibration and capture panels, and the status bar. It owns no
// digitizing logic; every interaction is forwarded through registered
// handlers.
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"carbontrace/internal/gui/components"
	"carbontrace/internal/models"
)

type Manager struct {
	window fyne.Window

	plot        *components.PlotDisplay
	calibration *components.CalibrationPanel
	capture     *components.CapturePanel
	status      *components.StatusBar

	loadButton   *widget.Button
	exportButton *widget.Button

	content fyne.CanvasObject

	onLoad   func()
	onExport func()
}

func NewManager(window fyne.Window) *Manager {
	m := &Manager{
		window:      window,
		plot:        components.NewPlotDisplay(),
		calibration: components.NewCalibrationPanel(),
		capture:     components.NewCapturePanel(),
		status:      components.NewStatusBar(),
	}

	m.loadButton = widget.NewButton("Load graph image", func() {
		if m.onLoad != nil {
			m.onLoad()
		}
	})
	m.exportButton = widget.NewButton("Export CSV", func() {
		if m.onExport != nil {
			m.onExport()
		}
	})

	sidebar := container.NewVBox(
		m.loadButton,
		widget.NewSeparator(),
		m.calibration.GetContainer(),
		widget.NewSeparator(),
		m.capture.GetContainer(),
		widget.NewSeparator(),
		m.exportButton,
	)

	plotScroll := container.NewScroll(m.plot)
	plotScroll.SetMinSize(fyne.NewSize(components.PlotViewportWidth, components.PlotViewportHeight))

	m.content = container.NewBorder(
		nil,
		m.status.GetContainer(),
		container.NewVScroll(sidebar),
		nil,
		plotScroll,
	)
	return m
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return m.content
}

func (m *Manager) SetLoadHandler(handler func())   { m.onLoad = handler }
func (m *Manager) SetExportHandler(handler func()) { m.onExport = handler }

func (m *Manager) SetClickHandler(handler components.ClickHandler) {
	m.plot.SetOnClick(handler)
}

func (m *Manager) SetAnchorCaptureHandler(handler func(models.Axis, models.AnchorID)) {
	m.calibration.SetCaptureHandler(handler)
}

func (m *Manager) SetAnchorValueHandler(handler func(models.Axis, models.AnchorID, string)) {
	m.calibration.SetValueHandler(handler)
}

func (m *Manager) SetScaleHandler(handler func(models.Axis, models.ScaleKind)) {
	m.calibration.SetScaleHandler(handler)
}

func (m *Manager) SetTraceModeHandler(handler func(bool)) {
	m.capture.SetTraceModeHandler(handler)
}

func (m *Manager) SetAutoTraceHandler(handler func(r, g, b, tolerance string)) {
	m.capture.SetAutoTraceHandler(handler)
}

func (m *Manager) SetUndoHandler(handler func())  { m.capture.SetUndoHandler(handler) }
func (m *Manager) SetClearHandler(handler func()) { m.capture.SetClearHandler(handler) }

// SetImage displays a freshly loaded chart and clears the calibration
// indicators that no longer apply to it.
func (m *Manager) SetImage(img image.Image) {
	m.plot.SetImage(img)
	m.calibration.Reset()
}

func (m *Manager) SetColorDefaults(r, g, b int, tolerance float64) {
	m.capture.SetColorDefaults(r, g, b, tolerance)
}

func (m *Manager) UpdateStatus(status string) {
	m.status.SetStatus(status)
}

func (m *Manager) SetAnchorCaptured(axis models.Axis, id models.AnchorID) {
	m.calibration.SetAnchorCaptured(axis, id, true)
}

func (m *Manager) SetAxisState(xComplete, yComplete bool) {
	m.status.SetAxisState(xComplete, yComplete)
}

func (m *Manager) SetPointCount(count int) {
	m.status.SetPointCount(count)
}

func (m *Manager) SetTracing(enabled bool) {
	m.capture.SetTracing(enabled)
}
