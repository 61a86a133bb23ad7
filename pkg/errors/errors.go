// Package errors provides structured error handling for the element tree.
//
// Declined events are not errors: elements report them through boolean or
// nil results. This package covers what remains: resource loads that fail,
// configuration problems, recovered panics, and dispatch protocol
// violations that are reported and then ignored.
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
	// KindInit indicates an initialization error.
	KindInit
	// KindResource indicates a font, image or theme that failed to load.
	KindResource
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindProtocol indicates an event sequence the dispatch protocol forbids.
	KindProtocol
	// KindConfig indicates an invalid configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindProtocol:
		return "protocol"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ElementsError represents a structured error reported by the framework.
type ElementsError struct {
	// Op is the operation that failed (e.g., "graphics.DefaultFontManager").
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

func (e *ElementsError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ElementsError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "view.Click").
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

// ProtocolError describes an event delivered out of order, such as a drag
// reaching a tracker that never saw the initiating click.
type ProtocolError struct {
	// Event is the event that arrived (e.g., "drag").
	Event string
	// Element is the type name of the receiving element.
	Element string
	// Reason explains what state was missing.
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s delivered to %s: %s", e.Event, e.Element, e.Reason)
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ElementsError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
