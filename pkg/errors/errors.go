// Package errors provides structured error handling for the styledtext library.
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
	// KindStructure indicates a foreign node kind nested under a text tree.
	KindStructure
	// KindPrecondition indicates a call-ordering violation, such as
	// measuring before a flatten has produced a buffer.
	KindPrecondition
	// KindParse indicates a markup, color, or property parsing failure.
	KindParse
	// KindShape indicates a text shaping backend error.
	KindShape
	// KindConfig indicates a fixture or configuration error.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindPrecondition:
		return "precondition"
	case KindParse:
		return "parse"
	case KindShape:
		return "shape"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TextError represents a structured error in the styledtext library.
type TextError struct {
	// Op is the operation that failed (e.g., "text.Flatten").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Tag is the identifier of the text node involved, if applicable.
	Tag int
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TextError) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("%s [%s] tag=%d: %v", e.Op, e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TextError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "text.Flatten").
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

// ParseError represents a failure to parse an input value.
type ParseError struct {
	// Source names the input surface ("markup", "color", "props", ...).
	Source string
	// DataType is the expected type or token name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: got %v", e.DataType, e.Source, e.Got)
}

// StructureError represents a foreign node kind encountered while
// traversing a text tree. Only text nodes may nest under a text root.
type StructureError struct {
	// ParentTag is the identifier of the text node that owns the child.
	ParentTag int
	// Got is the type name of the unexpected child.
	Got string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StructureError) Error() string {
	if e.ParentTag != 0 {
		return fmt.Sprintf("unexpected child kind %s under text node %d", e.Got, e.ParentTag)
	}
	return fmt.Sprintf("unexpected child kind %s under text node", e.Got)
}

// ErrorHandler receives errors reported by the styledtext library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TextError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleStructure is called when a text tree contains a foreign node.
	HandleStructure(err *StructureError)
}
