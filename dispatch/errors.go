package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCallable is returned for values that are neither functions nor
	// member selectors.
	ErrNotCallable = errors.New("not callable")

	// ErrArity is returned when the number of arguments does not fit the
	// callable's parameter list.
	ErrArity = errors.New("wrong number of arguments")

	// ErrArgType is returned when an argument is not accepted by the
	// parameter at its position.
	ErrArgType = errors.New("argument type not accepted")

	// ErrNoSuchMember is returned when a field or method selector finds no
	// member of that name on the receiver.
	ErrNoSuchMember = errors.New("no such member")

	// ErrIncompatible is returned when composed functions do not fit
	// together.
	ErrIncompatible = errors.New("incompatible signatures")

	// ErrNoMatch is returned when no candidate of an overload set accepts
	// the arguments.
	ErrNoMatch = errors.New("no matching overload")

	// ErrResultType is returned when a result does not have the requested
	// type.
	ErrResultType = errors.New("unexpected result type")

	// ErrDeleted is returned when the first candidate accepting the
	// arguments was marked with Deleted.
	ErrDeleted = errors.New("overload deleted")
)

// CallError describes a failed or refused call.
type CallError struct {
	// Callable describes the function or selector involved.
	Callable string
	// Index is the offending argument, or -1 when the error is not tied to
	// a single argument.
	Index int
	// Err wraps one of the sentinel errors of this package.
	Err error
}

func (e *CallError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Callable, e.Err)
	}
	return fmt.Sprintf("%s: argument %d: %v", e.Callable, e.Index, e.Err)
}

// Unwrap returns the sentinel error.
func (e *CallError) Unwrap() error {
	return e.Err
}

func callError(callable string, index int, err error) *CallError {
	return &CallError{Callable: callable, Index: index, Err: err}
}
