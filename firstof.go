package functional

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

var (
	// ErrNoMatch is returned when no case of an Overloads accepts a value.
	ErrNoMatch = errors.New("no matching case")

	// ErrRejected is returned when the first case accepting a value was
	// marked with Reject.
	ErrRejected = errors.New("case rejected")
)

// Case is one candidate of an overload set: a function together with the
// set of inputs it accepts.
type Case[T, R any] struct {
	accepts  func(T) bool
	apply    func(T) R
	rejected bool
}

// Accepts reports whether the case applies to x.
func (c Case[T, R]) Accepts(x T) bool {
	return c.accepts(x)
}

// Option applies the case to x, or returns None when it does not apply.
// A rejected case always returns None.
func (c Case[T, R]) Option(x T) mo.Option[R] {
	if c.rejected || !c.accepts(x) {
		return mo.None[R]()
	}
	return mo.Some(c.apply(x))
}

// Rejected reports whether the case was marked with Reject.
func (c Case[T, R]) Rejected() bool {
	return c.rejected
}

// On builds a case accepting the values of T that hold a U.
// T is usually an interface type; U is inferred from f.
//
// Example:
//
//	area := FirstOf(
//	    On[Shape](func(c Circle) float64 { return math.Pi * c.R * c.R }),
//	    On[Shape](func(s Square) float64 { return s.Side * s.Side }),
//	)
func On[T, U, R any](f func(U) R) Case[T, R] {
	return Case[T, R]{
		accepts: func(x T) bool {
			_, ok := any(x).(U)
			return ok
		},
		apply: func(x T) R {
			return f(any(x).(U))
		},
	}
}

// When builds a case accepting the values p accepts.
func When[T, R any](p Pred[T], f func(T) R) Case[T, R] {
	return Case[T, R]{accepts: p, apply: f}
}

// Default builds a case accepting every value.
func Default[T, R any](f func(T) R) Case[T, R] {
	return Case[T, R]{accepts: Pred[T](nil).Empty(), apply: f}
}

// Reject marks c as deliberately unsupported. A value that c accepts makes
// the whole overload set fail with ErrRejected instead of falling through to
// the cases after it.
func Reject[T, R any](c Case[T, R]) Case[T, R] {
	c.rejected = true
	return c
}

// Overloads picks, for each value, the first case that accepts it.
type Overloads[T, R any] struct {
	cases []Case[T, R]
}

// FirstOf builds an overload set from cases, in priority order.
func FirstOf[T, R any](cases ...Case[T, R]) Overloads[T, R] {
	return Overloads[T, R]{cases: append([]Case[T, R](nil), cases...)}
}

// selectCase returns the index of the first case accepting x, or -1.
func (o Overloads[T, R]) selectCase(x T) int {
	for i, c := range o.cases {
		if c.accepts(x) {
			return i
		}
	}
	return -1
}

// Call applies the first case accepting x.
// It fails with ErrNoMatch if none does and with ErrRejected if that case
// was rejected.
func (o Overloads[T, R]) Call(x T) (R, error) {
	var zero R
	i := o.selectCase(x)
	if i < 0 {
		return zero, fmt.Errorf("%w for %T", ErrNoMatch, x)
	}
	c := o.cases[i]
	if c.rejected {
		return zero, fmt.Errorf("%w: case %d for %T", ErrRejected, i, x)
	}
	return c.apply(x), nil
}

// Accepts reports whether Call would succeed for x.
func (o Overloads[T, R]) Accepts(x T) bool {
	i := o.selectCase(x)
	return i >= 0 && !o.cases[i].rejected
}

// Option is Call with failures mapped to None.
func (o Overloads[T, R]) Option(x T) mo.Option[R] {
	r, err := o.Call(x)
	if err != nil {
		return mo.None[R]()
	}
	return mo.Some(r)
}

// Result is Call as a mo.Result.
func (o Overloads[T, R]) Result(x T) mo.Result[R] {
	r, err := o.Call(x)
	if err != nil {
		return mo.Err[R](err)
	}
	return mo.Ok(r)
}

// Func returns Call as a plain function.
func (o Overloads[T, R]) Func() func(T) (R, error) {
	return o.Call
}

// Case returns the overload set as a single case, so that sets nest.
// The nested set accepts the values its Call succeeds on; a value rejected
// inside it falls through to the outer set's next case.
func (o Overloads[T, R]) Case() Case[T, R] {
	return Case[T, R]{
		accepts: o.Accepts,
		apply: func(x T) R {
			r, _ := o.Call(x)
			return r
		},
	}
}
