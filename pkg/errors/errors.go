// Package errors provides structured error reporting for hammer hosts.
//
// The animation core never fails. Errors come from the edges: loading
// configuration, encoding output, and the host's redraw scheduling. Hosts
// either return them or, when a failure must not stop the frame loop,
// Report them and carry on.
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
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindRender indicates a failure while rasterizing or encoding frames.
	KindRender
	// KindSchedule indicates a redraw request the host could not deliver.
	KindSchedule
	// KindPlatform indicates a terminal or audio device error.
	KindPlatform
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindSchedule:
		return "schedule"
	case KindPlatform:
		return "platform"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HammerError is a structured error with the failing operation attached.
type HammerError struct {
	// Op is the operation that failed (e.g., "term.requestRedraw").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New wraps err with an operation name and kind.
func New(op string, kind ErrorKind, err error) *HammerError {
	return &HammerError{Op: op, Kind: kind, Err: err}
}

func (e *HammerError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HammerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "term.loop").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *HammerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
