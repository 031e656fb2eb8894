package models

import (
	"fmt"
	"strings"
)

// InvalidInputError reports user input that cannot be interpreted:
// unparseable numeric text, out-of-range color components, or a
// non-finite value.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func NewInvalidInputError(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s (%q): %s", e.Field, e.Value, e.Reason)
}

// CalibrationIncompleteError reports an operation attempted before all
// four anchors are set. Missing lists every unset anchor by display
// name, in X Min, X Max, Y Min, Y Max order.
type CalibrationIncompleteError struct {
	Missing []string
}

func NewCalibrationIncompleteError(missing []string) *CalibrationIncompleteError {
	return &CalibrationIncompleteError{Missing: missing}
}

func (e *CalibrationIncompleteError) Error() string {
	return fmt.Sprintf("calibration incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// DomainError reports a calibration whose transform is mathematically
// undefined: zero pixel span, or non-positive bounds on a log axis.
type DomainError struct {
	Axis   Axis
	Reason string
}

func NewDomainError(axis Axis, reason string) *DomainError {
	return &DomainError{Axis: axis, Reason: reason}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s axis: %s", e.Axis, e.Reason)
}

// ExportError wraps a failure while writing the exported series. The
// in-memory session is never modified by a failed export.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export failed: %v", e.Err)
	}
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
