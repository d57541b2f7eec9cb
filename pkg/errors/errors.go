// Package errors provides structured error reporting for wheel pickers and
// their hosts.
//
// Library code returns these errors from constructors that must fail fast
// (missing wheels, invalid configuration) and reports non-fatal problems found
// during layout or painting through the global [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid construction-time configuration.
	KindConfig
	// KindLayout indicates a degenerate layout (zero height, no bounds).
	KindLayout
	// KindRender indicates a painting or encoding failure.
	KindRender
	// KindInput indicates a malformed pointer or gesture event.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WheelError is a structured error carrying the failing operation and its kind.
type WheelError struct {
	// Op is the operation that failed (e.g., "datepicker.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *WheelError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WheelError) Unwrap() error {
	return e.Err
}

// New returns a WheelError wrapping err.
func New(op string, kind ErrorKind, err error) *WheelError {
	return &WheelError{Op: op, Kind: kind, Err: err}
}

// Errorf returns a WheelError with a formatted message.
func Errorf(op string, kind ErrorKind, format string, args ...any) *WheelError {
	return &WheelError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// FieldError describes a single invalid configuration field.
type FieldError struct {
	// Field is the dotted path of the field (e.g., "wheel.item_height").
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains the constraint that was violated.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "desktop.Draw").
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

// ErrorHandler receives errors reported by wheels and their hosts.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *WheelError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
