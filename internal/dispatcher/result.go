package dispatcher

import "fmt"

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result describes the outcome of dispatching an action.
type Result struct {
	// Status is the outcome classification.
	Status ResultStatus

	// Err holds the error for StatusError results.
	Err error

	// Data carries handler-specific result values.
	Data map[string]any
}

// OK returns a successful result.
func OK() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a result indicating the action had no effect.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Error returns an error result wrapping err.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Err: fmt.Errorf(format, args...)}
}

// Failed reports whether the result is an error.
func (r Result) Failed() bool {
	return r.Status == StatusError
}
