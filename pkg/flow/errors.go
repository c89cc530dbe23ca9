package flow

import (
	"errors"
	"fmt"
)

// Contract violations. They are raised with panic because they signal a
// misuse by the caller, not an operational failure.
var (
	ErrNilSuccessValue  = errors.New("flow: a successful value cannot be nil")
	ErrFailureAsSuccess = errors.New("flow: a successful value cannot be a failure")
	ErrNilFailure       = errors.New("flow: failure cannot be nil")
	ErrNilValue         = errors.New("flow: value cannot be nil")
	ErrNilSource        = errors.New("flow: source cannot be nil")
)

// PanicError carries a value recovered inside an error boundary.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("flow: recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// AsError turns a recovered panic value into an error.
func AsError(recovered any) error {
	return &PanicError{Value: recovered}
}
