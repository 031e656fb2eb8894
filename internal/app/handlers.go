package app

import (
	"fmt"

	"carbontrace/internal/gui"
	"carbontrace/internal/logger"
	"carbontrace/internal/models"
	"carbontrace/internal/pipeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Handlers connects GUI events to the coordinator and pushes results
// back into status indicators. All digitizing semantics live behind
// the coordinator; this layer only narrates outcomes.
type Handlers struct {
	coordinator *pipeline.Coordinator
	guiManager  *gui.Manager
	logger      logger.Logger
}

func NewHandlers(coordinator *pipeline.Coordinator, guiManager *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		coordinator: coordinator,
		guiManager:  guiManager,
		logger:      log,
	}
}

func (h *Handlers) HandleLoad() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.showError("File Load Error", err)
			return
		}
		if reader == nil {
			return
		}

		h.guiManager.UpdateStatus("Loading image...")

		go func() {
			loaded, loadErr := h.coordinator.LoadImage(reader)
			reader.Close()

			fyne.Do(func() {
				if loadErr != nil {
					h.showError("Image Load Error", loadErr)
					h.guiManager.UpdateStatus("Ready")
					return
				}

				h.guiManager.SetImage(loaded.Image)
				h.guiManager.SetTracing(false)
				h.refreshState()
				h.guiManager.UpdateStatus("Graph loaded. Please calibrate axes.")
			})
		}()
	}, h.guiManager.GetWindow())
}

func (h *Handlers) HandleExport() {
	// Enumerate every missing anchor before opening the save dialog so
	// the user gets the complete list, not the first omission.
	if missing := h.coordinator.MissingAnchors(); len(missing) > 0 {
		h.showError("Calibration Missing", models.NewCalibrationIncompleteError(missing))
		return
	}
	if h.coordinator.PointCount() == 0 {
		h.showError("Export Error", pipeline.ErrNoPoints)
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		h.guiManager.UpdateStatus("Exporting...")

		go func() {
			exportErr := h.coordinator.Export(writer)
			path := writer.URI().Path()
			writer.Close()

			fyne.Do(func() {
				if exportErr != nil {
					h.showError("Export Error", exportErr)
					h.guiManager.UpdateStatus("Ready")
					return
				}
				h.guiManager.UpdateStatus(fmt.Sprintf("Export successful: %s", path))
			})
		}()
	}, h.guiManager.GetWindow())
}

func (h *Handlers) HandleClick(pixelX, pixelY float64, secondary bool) {
	outcome := h.coordinator.HandleClick(pixelX, pixelY, secondary)

	switch outcome.Kind {
	case pipeline.ClickAnchorCaptured:
		h.guiManager.SetAnchorCaptured(outcome.Axis, outcome.Anchor)
		h.guiManager.UpdateStatus(fmt.Sprintf(
			"%s %s location set. Enter its value on the left.",
			outcome.Axis, outcome.Anchor,
		))
	case pipeline.ClickPointAdded:
		h.guiManager.UpdateStatus("Point added.")
	case pipeline.ClickPointRemoved:
		h.guiManager.UpdateStatus("Last point removed.")
	}

	h.refreshState()
}

func (h *Handlers) HandleAnchorCapture(axis models.Axis, id models.AnchorID) {
	if err := h.coordinator.BeginAnchorCapture(axis, id); err != nil {
		h.guiManager.UpdateStatus("Please load an image first.")
		return
	}
	h.guiManager.UpdateStatus(fmt.Sprintf("Click the location for %s %s.", axis, id))
}

func (h *Handlers) HandleAnchorValue(axis models.Axis, id models.AnchorID, text string) {
	if err := h.coordinator.SetAnchorValueText(axis, id, text); err != nil {
		h.guiManager.UpdateStatus(err.Error())
		return
	}
	h.guiManager.UpdateStatus(fmt.Sprintf("%s %s value set.", axis, id))
	h.refreshState()
}

func (h *Handlers) HandleScaleChange(axis models.Axis, scale models.ScaleKind) {
	h.coordinator.SetScale(axis, scale)
	h.guiManager.UpdateStatus(fmt.Sprintf("%s axis scale: %s.", axis, scale))
}

func (h *Handlers) HandleTraceMode(enabled bool) {
	h.coordinator.SetTraceMode(enabled)
	if enabled {
		h.guiManager.UpdateStatus("Click to trace points. Right-click to undo.")
	} else {
		h.guiManager.UpdateStatus("Tracing paused.")
	}
}

func (h *Handlers) HandleAutoTrace(r, g, b, tolerance string) {
	count, err := h.coordinator.ExtractByColorText(r, g, b, tolerance)
	if err != nil {
		h.guiManager.UpdateStatus(err.Error())
		return
	}
	h.guiManager.UpdateStatus(fmt.Sprintf("Auto-traced %d points.", count))
	h.refreshState()
}

func (h *Handlers) HandleUndo() {
	if h.coordinator.UndoLast() {
		h.guiManager.UpdateStatus("Last point removed.")
	}
	h.refreshState()
}

func (h *Handlers) HandleClear() {
	h.coordinator.ClearPoints()
	h.guiManager.UpdateStatus("Traces cleared.")
	h.refreshState()
}

func (h *Handlers) refreshState() {
	h.guiManager.SetAxisState(
		h.coordinator.AxisComplete(models.AxisX),
		h.coordinator.AxisComplete(models.AxisY),
	)
	h.guiManager.SetPointCount(h.coordinator.PointCount())
}

func (h *Handlers) showError(title string, err error) {
	h.logger.Error("Handlers", err, map[string]interface{}{"dialog": title})
	dialog.ShowError(err, h.guiManager.GetWindow())
}
