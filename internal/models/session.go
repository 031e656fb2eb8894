package models

import (
	"image"
	"sync"
)

// TracedPoint is a single captured observation in pixel space, pending
// conversion to real-world units.
type TracedPoint struct {
	PixelX float64
	PixelY float64
}

// Session owns the loaded chart image, the calibration set, and the
// ordered traced-point sequence. Exactly one session exists per
// application run; all access goes through its mutex.
type Session struct {
	mu          sync.RWMutex
	raster      *Raster
	display     image.Image
	calibration *CalibrationSet
	points      []TracedPoint
}

func NewSession() *Session {
	return &Session{
		calibration: NewCalibrationSet(),
		points:      make([]TracedPoint, 0),
	}
}

// SetImage adopts a newly loaded image. Calibration and traced points
// from the previous image are discarded: anchors picked on one raster
// are meaningless against another.
func (s *Session) SetImage(raster *Raster, display image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raster = raster
	s.display = display
	s.calibration = NewCalibrationSet()
	s.points = s.points[:0]
}

// Raster returns the current normalized raster, nil before any load.
func (s *Session) Raster() *Raster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raster
}

// DisplayImage returns the decoded image for on-screen display.
func (s *Session) DisplayImage() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// HasImage reports whether an image has been loaded.
func (s *Session) HasImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raster != nil
}

// Calibration returns the live calibration set. Callers mutate it only
// through calibration actions on the coordinator.
func (s *Session) Calibration() *CalibrationSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calibration
}

// PushPoint appends one manually picked point.
func (s *Session) PushPoint(p TracedPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
}

// AppendPoints appends a color-extraction batch in order. Extraction
// is additive; it never replaces earlier captures.
func (s *Session) AppendPoints(batch []TracedPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, batch...)
}

// PopPoint removes and returns the most recently appended point,
// regardless of whether it came from a manual pick or a color batch.
func (s *Session) PopPoint() (TracedPoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) == 0 {
		return TracedPoint{}, false
	}
	last := s.points[len(s.points)-1]
	s.points = s.points[:len(s.points)-1]
	return last, true
}

// ClearPoints removes every traced point.
func (s *Session) ClearPoints() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = s.points[:0]
}

// Points returns a copy of the traced points in capture order.
func (s *Session) Points() []TracedPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := make([]TracedPoint, len(s.points))
	copy(points, s.points)
	return points
}

// PointCount returns the number of traced points.
func (s *Session) PointCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}
