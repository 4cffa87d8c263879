package dispatch

import (
	"fmt"
	"reflect"
	"slices"
)

// Func is the shape of the functions built by this package. A Func is
// itself callable by Invoke, which passes its arguments through unchecked
// and returns its results and error as they are.
type Func func(args ...any) ([]any, error)

// Call runs f.
func (f Func) Call(args ...any) ([]any, error) {
	return f(args...)
}

// staticFunc returns the type of f when it is statically known.
func staticFunc(f any) (reflect.Type, bool) {
	if v, ok := funcValue(f); ok {
		return v.Type(), true
	}
	return nil, false
}

// fits checks that the results of inner can be passed to outer. Shapes that
// are only known at call time are let through and checked then.
func (d *Dispatcher) fits(outer, inner any) error {
	ot, ok := staticFunc(outer)
	if !ok {
		return nil
	}
	it, ok := staticFunc(inner)
	if !ok {
		return nil
	}
	if !arityFits(ot, it.NumOut()) {
		return callError(describe(outer), -1,
			fmt.Errorf("%w: %s cannot take the %d results of %s", ErrIncompatible, ot, it.NumOut(), it))
	}
	for i := 0; i < it.NumOut(); i++ {
		pt, at := paramType(ot, i), it.Out(i)
		if d.acceptType(pt, at) || undecided(at) {
			continue
		}
		return callError(describe(outer), i,
			fmt.Errorf("%w: %s does not accept result %s of %s", ErrIncompatible, pt, at, it))
	}
	return nil
}

// Compose returns the composition of fns, rightmost first:
// Compose(f, g, h)(x) == f(g(h(x))). The results of each function are the
// arguments of the next. Adjacent functions whose types are known are
// checked against each other here; the rest is checked per call.
// Compose() is the identity and returns a copy of its arguments.
func (d *Dispatcher) Compose(fns ...any) (Func, error) {
	for _, f := range fns {
		if err := checkCallable(f); err != nil {
			return nil, err
		}
	}
	for i := 0; i+1 < len(fns); i++ {
		if err := d.fits(fns[i], fns[i+1]); err != nil {
			return nil, err
		}
	}

	fns = append([]any(nil), fns...)
	return func(args ...any) ([]any, error) {
		if len(fns) == 0 {
			return slices.Clone(args), nil
		}
		out := args
		for i := len(fns) - 1; i >= 0; i-- {
			var err error
			if out, err = d.Invoke(fns[i], out...); err != nil {
				return nil, fmt.Errorf("compose: stage %d: %w", i, err)
			}
		}
		return out, nil
	}, nil
}

// Superpose returns a function applying every g to its arguments and
// passing the results, in order, to f:
// Superpose(f, g, h)(x, y) == f(g(x, y), h(x, y)).
// Each g must return exactly one value. The arguments are checked against
// every g before any of them runs.
func (d *Dispatcher) Superpose(f any, gs ...any) (Func, error) {
	if len(gs) == 0 {
		return nil, callError(describe(f), -1, fmt.Errorf("%w: superpose needs an inner function", ErrArity))
	}
	for _, g := range append([]any{f}, gs...) {
		if err := checkCallable(g); err != nil {
			return nil, err
		}
	}
	if err := d.superposable(f, gs); err != nil {
		return nil, err
	}

	gs = append([]any(nil), gs...)
	return func(args ...any) ([]any, error) {
		for i, g := range gs {
			if err := d.Check(g, args...); err != nil {
				return nil, fmt.Errorf("superpose: inner %d: %w", i, err)
			}
		}
		inner := make([]any, len(gs))
		for i, g := range gs {
			out, err := d.Invoke(g, args...)
			if err != nil {
				return nil, fmt.Errorf("superpose: inner %d: %w", i, err)
			}
			if len(out) != 1 {
				return nil, callError(describe(g), -1,
					fmt.Errorf("%w: inner function returned %d values", ErrIncompatible, len(out)))
			}
			inner[i] = out[0]
		}
		return d.Invoke(f, inner...)
	}, nil
}

func (d *Dispatcher) superposable(f any, gs []any) error {
	types := make([]reflect.Type, len(gs))
	for i, g := range gs {
		gt, ok := staticFunc(g)
		if !ok {
			return nil
		}
		if gt.NumOut() != 1 {
			return callError(describe(g), -1,
				fmt.Errorf("%w: inner function must return one value, %s returns %d", ErrIncompatible, gt, gt.NumOut()))
		}
		types[i] = gt.Out(0)
	}
	ft, ok := staticFunc(f)
	if !ok {
		return nil
	}
	if !arityFits(ft, len(types)) {
		return callError(describe(f), -1,
			fmt.Errorf("%w: %s cannot take %d inner results", ErrIncompatible, ft, len(types)))
	}
	for i, at := range types {
		pt := paramType(ft, i)
		if d.acceptType(pt, at) || undecided(at) {
			continue
		}
		return callError(describe(f), i,
			fmt.Errorf("%w: %s does not accept %s", ErrIncompatible, pt, at))
	}
	return nil
}

// Compose composes fns using Default.
func Compose(fns ...any) (Func, error) {
	return Default.Compose(fns...)
}

// Superpose superposes gs under f using Default.
func Superpose(f any, gs ...any) (Func, error) {
	return Default.Superpose(f, gs...)
}
