// Package errors provides structured error handling for freecorner.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidDimension indicates a negative or non-finite width or height.
	KindInvalidDimension
	// KindInvalidRadius indicates a negative or non-finite corner radius.
	KindInvalidRadius
	// KindConfig indicates a rejected attribute value.
	KindConfig
	// KindRender indicates a failure while painting.
	KindRender
	// KindDecode indicates an image that could not be read or written.
	KindDecode
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDimension:
		return "invalid_dimension"
	case KindInvalidRadius:
		return "invalid_radius"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindDecode:
		return "decode"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DriftError represents a structured error.
type DriftError struct {
	// Op is the operation that failed (e.g., "corner.BuildPath").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DriftError) Unwrap() error {
	return e.Err
}

// New wraps err with an operation name and kind.
func New(op string, kind ErrorKind, err error) *DriftError {
	return &DriftError{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first DriftError in err's chain,
// or KindUnknown.
func KindOf(err error) ErrorKind {
	var de *DriftError
	if stderrors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.RenderFreeCornerImage.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ConfigError describes one attribute value that was rejected.
// The attribute keeps its default when this is reported.
type ConfigError struct {
	// Key is the attribute name (e.g., "stroke_color").
	Key string
	// Value is the raw value that was rejected.
	Value any
	// Reason explains the rejection.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("attribute %s=%v: %s", e.Key, e.Value, e.Reason)
}

// ErrorHandler receives errors reported by freecorner.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DriftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
