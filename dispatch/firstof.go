package dispatch

import (
	"fmt"
)

type candidate struct {
	fn      any
	deleted bool
}

// Overloads is an ordered set of candidate callables. A call goes to the
// first candidate accepting its arguments; the others are never consulted.
//
// Example:
//
//	area, _ := FirstOf(
//	    func(c Circle) float64 { return math.Pi * c.R * c.R },
//	    Deleted(func(l Line) float64 { return 0 }),
//	    func(s Shape) float64 { return s.Area() },
//	)
//
//	area.Call(Circle{R: 1}) // [3.14159...]
//	area.Call(Line{})       // ErrDeleted, even though Line is a Shape
type Overloads struct {
	d          *Dispatcher
	candidates []candidate
}

// FirstOf builds an overload set from candidates, in priority order.
// Candidates are anything Invoke accepts, or Deleted wrappers around them.
func (d *Dispatcher) FirstOf(candidates ...any) (*Overloads, error) {
	if len(candidates) == 0 {
		return nil, callError("firstOf", -1, fmt.Errorf("%w: no candidates", ErrArity))
	}
	o := &Overloads{d: d, candidates: make([]candidate, len(candidates))}
	for i, c := range candidates {
		cand := candidate{fn: c}
		for {
			del, ok := cand.fn.(DeletedOverload)
			if !ok {
				break
			}
			cand.fn, cand.deleted = del.fn, true
		}
		if err := checkCallable(cand.fn); err != nil {
			return nil, fmt.Errorf("firstOf: candidate %d: %w", i, err)
		}
		o.candidates[i] = cand
	}
	return o, nil
}

// FirstOf builds an overload set using Default.
func FirstOf(candidates ...any) (*Overloads, error) {
	return Default.FirstOf(candidates...)
}

// Select returns the index of the candidate a call with args goes to.
// If that candidate is deleted, its index is returned with ErrDeleted.
func (o *Overloads) Select(args ...any) (int, error) {
	for i, c := range o.candidates {
		if o.d.Check(c.fn, args...) != nil {
			continue
		}
		if c.deleted {
			o.d.logf("firstOf: candidate %d (%s) matched (%s) and is deleted", i, describe(c.fn), argTypes(args))
			return i, callError(describe(c.fn), -1, fmt.Errorf("%w for (%s)", ErrDeleted, argTypes(args)))
		}
		o.d.logf("firstOf: candidate %d (%s) selected for (%s)", i, describe(c.fn), argTypes(args))
		return i, nil
	}
	return -1, callError("firstOf", -1, fmt.Errorf("%w for (%s)", ErrNoMatch, argTypes(args)))
}

// Check returns nil if Call would accept args.
func (o *Overloads) Check(args ...any) error {
	_, err := o.Select(args...)
	return err
}

// Invocable reports whether Call would accept args. It is false when the
// first candidate accepting args is deleted.
func (o *Overloads) Invocable(args ...any) bool {
	return o.Check(args...) == nil
}

// Call invokes the selected candidate.
func (o *Overloads) Call(args ...any) ([]any, error) {
	i, err := o.Select(args...)
	if err != nil {
		return nil, err
	}
	return o.d.Invoke(o.candidates[i].fn, args...)
}

// Len returns the number of candidates.
func (o *Overloads) Len() int {
	return len(o.candidates)
}

// Func returns Call as a Func.
func (o *Overloads) Func() Func {
	return o.Call
}
