package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CapturePanel groups the data-capture controls: manual tracing,
// auto-trace by color, undo and clear.
type CapturePanel struct {
	container *fyne.Container

	traceToggle *widget.Check
	redEntry    *widget.Entry
	greenEntry  *widget.Entry
	blueEntry   *widget.Entry
	tolEntry    *widget.Entry

	onTraceMode func(enabled bool)
	onAutoTrace func(r, g, b, tolerance string)
	onUndo      func()
	onClear     func()
}

func NewCapturePanel() *CapturePanel {
	cp := &CapturePanel{
		redEntry:   widget.NewEntry(),
		greenEntry: widget.NewEntry(),
		blueEntry:  widget.NewEntry(),
		tolEntry:   widget.NewEntry(),
	}

	cp.traceToggle = widget.NewCheck("Manual trace (right-click undoes)", func(checked bool) {
		if cp.onTraceMode != nil {
			cp.onTraceMode(checked)
		}
	})

	autoButton := widget.NewButton("Auto-trace by color", func() {
		if cp.onAutoTrace != nil {
			cp.onAutoTrace(cp.redEntry.Text, cp.greenEntry.Text, cp.blueEntry.Text, cp.tolEntry.Text)
		}
	})
	undoButton := widget.NewButton("Undo last point", func() {
		if cp.onUndo != nil {
			cp.onUndo()
		}
	})
	clearButton := widget.NewButton("Clear traces", func() {
		if cp.onClear != nil {
			cp.onClear()
		}
	})

	colorForm := container.NewGridWithColumns(2,
		widget.NewLabel("R (0-255):"), cp.redEntry,
		widget.NewLabel("G (0-255):"), cp.greenEntry,
		widget.NewLabel("B (0-255):"), cp.blueEntry,
		widget.NewLabel("Tol (%):"), cp.tolEntry,
	)

	cp.container = container.NewVBox(
		widget.NewLabel("Capture"),
		cp.traceToggle,
		colorForm,
		autoButton,
		undoButton,
		clearButton,
	)
	return cp
}

func (cp *CapturePanel) GetContainer() *fyne.Container {
	return cp.container
}

// SetColorDefaults seeds the auto-trace entries from configuration.
func (cp *CapturePanel) SetColorDefaults(r, g, b int, tolerance float64) {
	cp.redEntry.SetText(strconv.Itoa(r))
	cp.greenEntry.SetText(strconv.Itoa(g))
	cp.blueEntry.SetText(strconv.Itoa(b))
	cp.tolEntry.SetText(strconv.FormatFloat(tolerance, 'f', -1, 64))
}

func (cp *CapturePanel) SetTraceModeHandler(handler func(bool)) {
	cp.onTraceMode = handler
}

func (cp *CapturePanel) SetAutoTraceHandler(handler func(r, g, b, tolerance string)) {
	cp.onAutoTrace = handler
}

func (cp *CapturePanel) SetUndoHandler(handler func()) {
	cp.onUndo = handler
}

func (cp *CapturePanel) SetClearHandler(handler func()) {
	cp.onClear = handler
}

// SetTracing reflects the coordinator's capture mode back into the
// toggle without re-firing the handler.
func (cp *CapturePanel) SetTracing(enabled bool) {
	saved := cp.onTraceMode
	cp.onTraceMode = nil
	cp.traceToggle.SetChecked(enabled)
	cp.onTraceMode = saved
}
