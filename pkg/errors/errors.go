// Package errors provides structured diagnostic reporting for the Adaptive
// library.
//
// The animation engine follows the convention that programmer errors (calling
// an operation in the wrong state, constructing with invalid arguments) are
// reported through a process-wide handler and then ignored or aborted rather
// than raised as panics. Applications install their own handler with
// [SetHandler]; tests typically install a capturing handler to assert that a
// misuse was diagnosed.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of a diagnostic.
type Kind int

const (
	// KindUnknown indicates a diagnostic of unknown category.
	KindUnknown Kind = iota
	// KindUsage indicates an operation invoked in a state that does not
	// permit it, such as playing an animation that is already playing.
	KindUsage
	// KindArgument indicates a constructor or setter argument that violates
	// its preconditions. The offending operation is aborted.
	KindArgument
	// KindConvergence indicates a numeric estimation that failed to converge
	// within its iteration bound and fell back to a defined default.
	KindConvergence
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindArgument:
		return "argument"
	case KindConvergence:
		return "convergence"
	default:
		return "unknown"
	}
}

// Error represents a structured diagnostic in the Adaptive library.
type Error struct {
	// Op is the operation that was diagnosed (e.g., "animation.Play").
	Op string
	// Kind categorizes the diagnostic.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the diagnostic.
	StackTrace string
	// Timestamp is when the diagnostic occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Handler receives diagnostics reported by the Adaptive library.
type Handler interface {
	// HandleError is called when a diagnostic is reported.
	HandleError(err *Error)
}
