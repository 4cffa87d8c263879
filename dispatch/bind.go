package dispatch

import (
	"slices"
)

// BindFront binds the leading arguments of f. The bound arguments are
// checked against f now; the remaining ones are appended on every call.
//
// Example:
//
//	greet, _ := BindFront(fmt.Sprintf, "%s, %s!")
//	greet("Hello", "world") // ["Hello, world!"]
func (d *Dispatcher) BindFront(f any, bound ...any) (Func, error) {
	c, err := d.Curry(f)
	if err != nil {
		return nil, err
	}
	if c, err = c.Apply(bound...); err != nil {
		return nil, err
	}
	return func(rest ...any) ([]any, error) {
		return d.Invoke(c.fn, append(slices.Clone(c.bound), rest...)...)
	}, nil
}

// BindFront binds the leading arguments of f using Default.
func BindFront(f any, bound ...any) (Func, error) {
	return Default.BindFront(f, bound...)
}

// BindFirst binds the first argument of f using Default.
func BindFirst(f any, arg any) (Func, error) {
	return Default.BindFront(f, arg)
}
