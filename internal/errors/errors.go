package errors

import (
	"fmt"
)

// ErrorType represents the type of error.
type ErrorType string

// Every one of these aborts the run. No output is written after any of
// them; a consumer never sees a partial fixture.
const (
	ErrorTypeMissingField       ErrorType = "MISSING_FIELD"
	ErrorTypeEventCountMismatch ErrorType = "EVENT_COUNT_MISMATCH"
	ErrorTypeDurationMismatch   ErrorType = "DURATION_MISMATCH"
	ErrorTypeMalformedNumber    ErrorType = "MALFORMED_NUMBER"
	ErrorTypeInternal           ErrorType = "INTERNAL_ERROR"
)

// AppError represents an application error with additional context.
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
	}
}

// Wrap wraps an existing error.
func Wrap(err error, errType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// Common error constructors.

// NewMissingField reports a required element or attribute that resolved
// to nothing. Path is the element path as written in the input format,
// e.g. "sequence/timecode/frame".
func NewMissingField(path string) *AppError {
	return New(ErrorTypeMissingField, fmt.Sprintf("required field %s is missing", path)).
		WithDetails(map[string]interface{}{"path": path})
}

// NewMalformedNumber reports text that did not yield a usable integer.
func NewMalformedNumber(path, text string, err error) *AppError {
	return Wrap(err, ErrorTypeMalformedNumber, fmt.Sprintf("field %s: invalid integer %q", path, text)).
		WithDetails(map[string]interface{}{"path": path, "text": text})
}

// NewEventCountMismatch reports that the EDL and the XML timeline
// disagree about how many events the cut contains.
func NewEventCountMismatch(edlEvents, xmlClips int) *AppError {
	return New(ErrorTypeEventCountMismatch,
		fmt.Sprintf("EDL contains %d events but XML timeline contains %d clip items", edlEvents, xmlClips)).
		WithDetails(map[string]interface{}{"edl_events": edlEvents, "xml_clips": xmlClips})
}

// NewDurationMismatch reports an event whose source-side and
// record-side lengths differ.
func NewDurationMismatch(sourceFrames, recordFrames int64) *AppError {
	return New(ErrorTypeDurationMismatch,
		fmt.Sprintf("source duration %d frames does not match record duration %d frames", sourceFrames, recordFrames)).
		WithDetails(map[string]interface{}{"source_frames": sourceFrames, "record_frames": recordFrames})
}

// NewInternalError creates an internal error.
func NewInternalError(message string) *AppError {
	return New(ErrorTypeInternal, message)
}

// WrapInternalError wraps an error as internal error.
func WrapInternalError(err error, message string) *AppError {
	return Wrap(err, ErrorTypeInternal, message)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts AppError from an error.
func GetAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Type == errType
	}
	return false
}
