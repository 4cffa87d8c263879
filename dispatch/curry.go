package dispatch

import (
	"fmt"
	"slices"
)

// Curried is a function together with the arguments bound to it so far.
// Curried values are immutable; binding more arguments returns a new one.
// A Curried is itself callable by Invoke and the combinators built on it:
// a call that completes the argument list returns the function's results,
// any other viable call returns the extended Curried as its only result.
//
// Example:
//
//	sum, _ := Curry(func(x, y, z int) int { return x + y + z })
//
//	sum.Call(1, 2, 3)                    // 6
//	next, _ := sum.Call(1, 2)            // a Curried waiting for z
//	next.(Curried).Call(3)               // 6
type Curried struct {
	d     *Dispatcher
	fn    any
	bound []any
}

// Curry returns f with no arguments bound.
func (d *Dispatcher) Curry(f any) (Curried, error) {
	if err := checkCallable(f); err != nil {
		return Curried{}, err
	}
	return Curried{d: d, fn: f}, nil
}

// Curry curries f using Default.
func Curry(f any) (Curried, error) {
	return Default.Curry(f)
}

// Bound returns the number of arguments bound so far.
func (c Curried) Bound() int {
	return len(c.bound)
}

// Ready reports whether the bound arguments complete a call.
func (c Curried) Ready() bool {
	return c.d.Invocable(c.fn, c.bound...)
}

// Apply binds args after the ones already bound. It fails if the extended
// argument list can never become a valid call: too many arguments, or an
// argument its parameter does not accept.
func (c Curried) Apply(args ...any) (Curried, error) {
	all := append(slices.Clone(c.bound), args...)
	if err := c.d.viable(c.fn, all); err != nil {
		return Curried{}, err
	}
	return Curried{d: c.d, fn: c.fn, bound: all}, nil
}

// Invoke calls the function with the bound arguments.
func (c Curried) Invoke() ([]any, error) {
	return c.d.Invoke(c.fn, c.bound...)
}

// Call binds args and, if that completes a call, invokes the function.
// The result is then nil for a function without results, the single result,
// or all results as a []any. Otherwise Call returns the new Curried.
func (c Curried) Call(args ...any) (any, error) {
	next, err := c.Apply(args...)
	if err != nil {
		return nil, err
	}
	if !next.Ready() {
		return next, nil
	}
	out, err := next.Invoke()
	if err != nil {
		return nil, err
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0], nil
	}
	return out, nil
}

// Check returns nil if args can extend the bound arguments.
func (c Curried) Check(args ...any) error {
	return c.d.Check(c, args...)
}

// Func returns c as a Func.
func (c Curried) Func() Func {
	return func(args ...any) ([]any, error) {
		return c.d.Invoke(c, args...)
	}
}

func (c Curried) String() string {
	return "curried " + describe(c.fn)
}

// viable reports whether args is a prefix of some valid call of f.
func (d *Dispatcher) viable(f any, args []any) error {
	if d.Check(f, args...) == nil || len(args) == 0 {
		return nil
	}
	switch c := f.(type) {
	case Func, Dynamic:
		// Only a complete call can be checked.
		return nil
	case Projector, FieldSelector, Curried:
		return d.Check(f, args...)
	case ReceiverFunc:
		v, _ := funcValue(c.fn)
		_, err := d.bindFunc(v.Type(), args, describe(f), true)
		return err
	case MethodSelector:
		m, err := d.findMethod(c.name, args[0])
		if err != nil {
			return callError(describe(f), 0, err)
		}
		_, err = d.bindArgs(m.Type(), args[1:], 1, describe(f), true)
		return err
	}
	v, ok := funcValue(f)
	if !ok {
		return callError(describe(f), -1, fmt.Errorf("%w: %T", ErrNotCallable, f))
	}
	_, err := d.bindArgs(v.Type(), args, 0, describe(f), true)
	return err
}
