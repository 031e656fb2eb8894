package pipeline

import (
	"errors"
	"io"
	"math"
	"strconv"
	"sync"

	"carbontrace/internal/logger"
	"carbontrace/internal/models"
	"carbontrace/internal/trace"

	"fyne.io/fyne/v2"
)

// CaptureMode says what a canvas click currently means.
type CaptureMode int

const (
	// ModeIdle ignores clicks.
	ModeIdle CaptureMode = iota
	// ModeCalibrate captures the next primary click as the pending
	// anchor's pixel location, then returns to idle.
	ModeCalibrate
	// ModeTrace appends points on primary clicks and undoes the last
	// point on secondary clicks.
	ModeTrace
)

// ClickKind classifies what a click did.
type ClickKind int

const (
	ClickIgnored ClickKind = iota
	ClickAnchorCaptured
	ClickPointAdded
	ClickPointRemoved
)

// ClickOutcome tells the UI what happened so it can update status
// indicators without inspecting coordinator internals.
type ClickOutcome struct {
	Kind   ClickKind
	Axis   models.Axis
	Anchor models.AnchorID
	Point  models.TracedPoint
}

// ErrNoPoints is the export validation failure for an empty trace.
var ErrNoPoints = errors.New("no traced points to export")

// ErrNoImage is returned for operations that need a loaded image.
var ErrNoImage = errors.New("no image loaded")

// Coordinator is the facade between the UI collaborator and the
// digitizing engine. It owns the session and the capture-mode state
// machine, serializes every operation behind one mutex, and parses the
// raw text inputs the UI hands over.
type Coordinator struct {
	mu       sync.Mutex
	session  *models.Session
	loader   *Loader
	exporter *Exporter
	logger   logger.Logger

	mode          CaptureMode
	pendingAxis   models.Axis
	pendingAnchor models.AnchorID
}

func NewCoordinator(log logger.Logger) *Coordinator {
	return &Coordinator{
		session:  models.NewSession(),
		loader:   NewLoader(log),
		exporter: NewExporter(log),
		logger:   log,
		mode:     ModeIdle,
	}
}

// Session exposes the live session for read access (point overlay,
// completeness indicators).
func (c *Coordinator) Session() *models.Session {
	return c.session
}

// LoadImage decodes and adopts a new chart image. Calibration and
// traced points are reset by the session; capture mode returns to idle.
func (c *Coordinator) LoadImage(reader fyne.URIReadCloser) (*LoadedImage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded, err := c.loader.LoadFromReader(reader)
	if err != nil {
		return nil, err
	}

	c.session.SetImage(loaded.Raster, loaded.Image)
	c.mode = ModeIdle
	return loaded, nil
}

// LoadImageFromFile is the headless counterpart of LoadImage.
func (c *Coordinator) LoadImageFromFile(path string) (*LoadedImage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded, err := c.loader.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	c.session.SetImage(loaded.Raster, loaded.Image)
	c.mode = ModeIdle
	return loaded, nil
}

// BeginAnchorCapture arms the state machine so the next primary click
// records the given anchor's pixel location.
func (c *Coordinator) BeginAnchorCapture(axis models.Axis, id models.AnchorID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.HasImage() {
		return ErrNoImage
	}
	c.mode = ModeCalibrate
	c.pendingAxis = axis
	c.pendingAnchor = id
	return nil
}

// SetTraceMode toggles manual point picking.
func (c *Coordinator) SetTraceMode(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if enabled {
		c.mode = ModeTrace
	} else {
		c.mode = ModeIdle
	}
}

// Mode returns the current capture mode.
func (c *Coordinator) Mode() CaptureMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// HandleClick dispatches a canvas click to whichever mode is active.
// X-axis anchors capture the horizontal pixel coordinate, Y-axis
// anchors the vertical one.
func (c *Coordinator) HandleClick(pixelX, pixelY float64, secondary bool) ClickOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case ModeCalibrate:
		if secondary {
			c.mode = ModeIdle
			return ClickOutcome{Kind: ClickIgnored}
		}
		pixel := pixelX
		if c.pendingAxis == models.AxisY {
			pixel = pixelY
		}
		c.session.Calibration().ForAxis(c.pendingAxis).SetAnchorPixel(c.pendingAnchor, pixel)
		c.mode = ModeIdle
		c.logger.Debug("Coordinator", "anchor pixel captured", map[string]interface{}{
			"axis":   c.pendingAxis.String(),
			"anchor": c.pendingAnchor.String(),
			"pixel":  pixel,
		})
		return ClickOutcome{Kind: ClickAnchorCaptured, Axis: c.pendingAxis, Anchor: c.pendingAnchor}

	case ModeTrace:
		if secondary {
			if removed, ok := c.session.PopPoint(); ok {
				return ClickOutcome{Kind: ClickPointRemoved, Point: removed}
			}
			return ClickOutcome{Kind: ClickIgnored}
		}
		point := models.TracedPoint{PixelX: pixelX, PixelY: pixelY}
		c.session.PushPoint(point)
		return ClickOutcome{Kind: ClickPointAdded, Point: point}
	}
	return ClickOutcome{Kind: ClickIgnored}
}

// SetAnchorPixel records an anchor's pixel location directly, the
// headless counterpart of a calibration click.
func (c *Coordinator) SetAnchorPixel(axis models.Axis, id models.AnchorID, pixel float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Calibration().ForAxis(axis).SetAnchorPixel(id, pixel)
}

// SetAnchorValue stores an anchor's real-world value.
func (c *Coordinator) SetAnchorValue(axis models.Axis, id models.AnchorID, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Calibration().ForAxis(axis).SetAnchorValue(id, value)
}

// SetAnchorValueText parses and stores a user-entered axis value.
// Unparseable or non-finite text fails with InvalidInputError and
// leaves the anchor unchanged.
func (c *Coordinator) SetAnchorValueText(axis models.Axis, id models.AnchorID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	field := axis.String() + " " + id.String()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return models.NewInvalidInputError(field, text, "value must be a number")
	}
	return c.session.Calibration().ForAxis(axis).SetAnchorValue(id, value)
}

// SetScale changes an axis's scale kind. Anchors are kept; the new
// interpretation applies to the values already stored.
func (c *Coordinator) SetScale(axis models.Axis, scale models.ScaleKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Calibration().ForAxis(axis).Scale = scale
}

// AnchorStatus reports whether one anchor's pixel and value have been
// captured, for UI status indicators.
func (c *Coordinator) AnchorStatus(axis models.Axis, id models.AnchorID) (hasPixel, hasValue bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	calibration := c.session.Calibration().ForAxis(axis)
	anchor := calibration.Min
	if id == models.AnchorMax {
		anchor = calibration.Max
	}
	return anchor.HasPixel, anchor.HasValue
}

// AxisComplete reports per-axis calibration readiness.
func (c *Coordinator) AxisComplete(axis models.Axis) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Calibration().ForAxis(axis).IsComplete()
}

// MissingAnchors lists every unset anchor by display name.
func (c *Coordinator) MissingAnchors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Calibration().MissingAnchors()
}

// ExtractByColor runs the auto-trace scan and appends the resulting
// batch to the session. Returns the number of points produced.
func (c *Coordinator) ExtractByColor(target trace.ColorTarget, tolerancePercent float64) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raster := c.session.Raster()
	if raster == nil {
		return 0, ErrNoImage
	}

	batch, err := trace.ExtractByColor(raster, target, tolerancePercent)
	if err != nil {
		return 0, err
	}

	c.session.AppendPoints(batch)
	c.logger.Info("Coordinator", "auto-trace complete", map[string]interface{}{
		"points":    len(batch),
		"tolerance": tolerancePercent,
	})
	return len(batch), nil
}

// ExtractByColorText parses the raw R/G/B/tolerance strings from the
// UI and runs ExtractByColor.
func (c *Coordinator) ExtractByColorText(rText, gText, bText, tolText string) (int, error) {
	target := trace.ColorTarget{}
	for _, component := range []struct {
		name string
		text string
		dst  *int
	}{
		{"R", rText, &target.R},
		{"G", gText, &target.G},
		{"B", bText, &target.B},
	} {
		value, err := strconv.Atoi(component.text)
		if err != nil {
			return 0, models.NewInvalidInputError(component.name, component.text, "color component must be an integer")
		}
		*component.dst = value
	}

	tolerance, err := strconv.ParseFloat(tolText, 64)
	if err != nil || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return 0, models.NewInvalidInputError("tolerance", tolText, "tolerance must be a finite number")
	}

	return c.ExtractByColor(target, tolerance)
}

// UndoLast removes the most recently captured point.
func (c *Coordinator) UndoLast() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.session.PopPoint()
	return ok
}

// ClearPoints removes every traced point.
func (c *Coordinator) ClearPoints() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.ClearPoints()
}

// PointCount returns the current traced-point count.
func (c *Coordinator) PointCount() int {
	return c.session.PointCount()
}

// Reconstruct converts the traced points to real-world values.
func (c *Coordinator) Reconstruct() ([]trace.DataPoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return trace.ReconstructAll(c.session.Points(), c.session.Calibration())
}

// Export validates calibration and points, reconstructs, and writes
// the CSV. Session state is untouched whether it succeeds or fails.
func (c *Coordinator) Export(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	series, err := c.reconstructForExport()
	if err != nil {
		return err
	}
	if err := c.exporter.WriteSeries(w, series); err != nil {
		return &models.ExportError{Err: err}
	}
	return nil
}

// ExportToPath is Export against a file path.
func (c *Coordinator) ExportToPath(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	series, err := c.reconstructForExport()
	if err != nil {
		return err
	}
	return c.exporter.SaveToPath(path, series)
}

func (c *Coordinator) reconstructForExport() ([]trace.DataPoint, error) {
	if missing := c.session.Calibration().MissingAnchors(); len(missing) > 0 {
		return nil, models.NewCalibrationIncompleteError(missing)
	}
	points := c.session.Points()
	if len(points) == 0 {
		return nil, &models.ExportError{Err: ErrNoPoints}
	}
	return trace.ReconstructAll(points, c.session.Calibration())
}
