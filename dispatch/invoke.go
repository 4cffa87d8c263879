package dispatch

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// Dispatcher resolves calls. The zero value is not usable; create one with
// New or use Default.
type Dispatcher struct {
	conversions bool
	logger      func(string)
}

// Default is the Dispatcher used by the package-level functions.
var Default = New()

// New returns a Dispatcher configured by opts.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger(fmt.Sprintf(format, args...))
	}
}

// thunk is a call that passed every check and only remains to be run.
type thunk func() ([]any, error)

// prepare classifies f and checks args against it without calling anything.
func (d *Dispatcher) prepare(f any, args []any) (thunk, error) {
	if err := checkCallable(f); err != nil {
		return nil, err
	}
	name := describe(f)

	switch c := f.(type) {
	case Func:
		return func() ([]any, error) { return c(args...) }, nil

	case Dynamic:
		if err := c.Check(args...); err != nil {
			return nil, err
		}
		return func() ([]any, error) { return c.Call(args...) }, nil

	case Projector:
		if len(args) != 1 {
			return nil, callError(name, -1, fmt.Errorf("%w: want 1, got %d", ErrArity, len(args)))
		}
		v, ok := c.Project(args[0])
		if !ok {
			return nil, callError(name, 0, fmt.Errorf("%w: cannot project from %T", ErrArgType, args[0]))
		}
		return func() ([]any, error) { return []any{v}, nil }, nil

	case FieldSelector:
		if len(args) != 1 {
			return nil, callError(name, -1, fmt.Errorf("%w: want 1, got %d", ErrArity, len(args)))
		}
		v, err := d.projectField(c.name, args[0])
		if err != nil {
			return nil, callError(name, 0, err)
		}
		return func() ([]any, error) { return []any{v}, nil }, nil

	case ReceiverFunc:
		v, _ := funcValue(c.fn)
		in, err := d.bindFunc(v.Type(), args, name, false)
		if err != nil {
			return nil, err
		}
		return func() ([]any, error) { return results(v.Call(in)), nil }, nil

	case Curried:
		next, err := c.Apply(args...)
		if err != nil {
			return nil, err
		}
		if !next.Ready() {
			return func() ([]any, error) { return []any{next}, nil }, nil
		}
		return next.Invoke, nil

	case MethodSelector:
		if len(args) == 0 {
			return nil, callError(name, -1, fmt.Errorf("%w: missing receiver", ErrArity))
		}
		m, err := d.findMethod(c.name, args[0])
		if err != nil {
			return nil, callError(name, 0, err)
		}
		in, err := d.bindArgs(m.Type(), args[1:], 1, name, false)
		if err != nil {
			return nil, err
		}
		return func() ([]any, error) { return results(m.Call(in)), nil }, nil
	}

	v, _ := funcValue(f)
	in, err := d.bindArgs(v.Type(), args, 0, name, false)
	if err != nil {
		return nil, err
	}
	return func() ([]any, error) { return results(v.Call(in)), nil }, nil
}

func results(out []reflect.Value) []any {
	return lo.Map(out, func(v reflect.Value, _ int) any {
		return v.Interface()
	})
}

// bindFunc binds args to the receiver function ft. If the first argument
// is not accepted as is, wrapper layers are peeled from it until it is.
func (d *Dispatcher) bindFunc(ft reflect.Type, args []any, name string, prefix bool) ([]reflect.Value, error) {
	in, err := d.bindArgs(ft, args, 0, name, prefix)
	var ce *CallError
	if err == nil || !errors.As(err, &ce) || ce.Index != 0 {
		return in, err
	}

	recv, ok := args[0], true
	for depth := 0; depth < maxPeel; depth++ {
		if recv, ok = peel(recv); !ok {
			break
		}
		peeled := append([]any{recv}, args[1:]...)
		if in, perr := d.bindArgs(ft, peeled, 0, name, prefix); perr == nil {
			d.logf("invoke: %s: receiver %T unwrapped to %T", name, args[0], recv)
			return in, nil
		}
	}
	return nil, err
}

// bindArgs converts args into call values for ft. offset shifts argument
// indexes in errors. In prefix mode args may be shorter than the parameter
// list.
func (d *Dispatcher) bindArgs(ft reflect.Type, args []any, offset int, name string, prefix bool) ([]reflect.Value, error) {
	fits := arityFits(ft, len(args))
	if prefix {
		fits = arityAllows(ft, len(args))
	}
	if !fits {
		return nil, callError(name, -1, fmt.Errorf("%w: %s cannot take %d", ErrArity, ft, len(args)+offset))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(ft, i)
		v, ok := d.accept(pt, a)
		if !ok {
			if p, isRef := unref(a); isRef {
				v, ok = d.accept(pt, p)
			}
		}
		if !ok {
			return nil, callError(name, i+offset, fmt.Errorf("%w: %s does not accept %T", ErrArgType, pt, a))
		}
		in[i] = v
	}
	return in, nil
}

// projectField reads the field name from recv, peeling wrappers until a
// struct carrying that field is reached.
func (d *Dispatcher) projectField(name string, recv any) (any, error) {
	cur := recv
	for depth := 0; depth <= maxPeel; depth++ {
		v := reflect.ValueOf(cur)
		if v.Kind() == reflect.Struct {
			if sf, ok := v.Type().FieldByName(name); ok && sf.IsExported() {
				fv, err := v.FieldByIndexErr(sf.Index)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrNoSuchMember, name, err)
				}
				if fv.CanInterface() {
					if depth > 0 {
						d.logf("invoke: field %s: receiver %T unwrapped to %T", name, recv, cur)
					}
					return fv.Interface(), nil
				}
			}
		}
		next, ok := peel(cur)
		if !ok {
			break
		}
		cur = next
	}
	return nil, fmt.Errorf("%w: field %s on %T", ErrNoSuchMember, name, recv)
}

// findMethod returns the method name bound to recv, peeling wrappers until
// a receiver carrying that method is reached.
func (d *Dispatcher) findMethod(name string, recv any) (reflect.Value, error) {
	cur := recv
	for depth := 0; depth <= maxPeel; depth++ {
		if v := reflect.ValueOf(cur); v.IsValid() {
			if m := v.MethodByName(name); m.IsValid() && !valueMethodOnNil(v, name) {
				if depth > 0 {
					d.logf("invoke: method %s: receiver %T unwrapped to %T", name, recv, cur)
				}
				return m, nil
			}
		}
		next, ok := peel(cur)
		if !ok {
			break
		}
		cur = next
	}
	return reflect.Value{}, fmt.Errorf("%w: method %s on %T", ErrNoSuchMember, name, recv)
}

// valueMethodOnNil reports whether calling method name on v would
// dereference a nil pointer.
func valueMethodOnNil(v reflect.Value, name string) bool {
	if v.Kind() != reflect.Pointer || !v.IsNil() {
		return false
	}
	_, ok := v.Type().Elem().MethodByName(name)
	return ok
}

// ============================================================================
// Invocation
// ============================================================================

// Invoke calls f with args and returns its results.
//
// f may be a function, a FieldSelector or Projector (one receiver argument,
// the field value is returned), a MethodSelector (receiver first, then the
// method's arguments), a ReceiverFunc, a Func, a Dynamic or a Curried.
// Receivers of the member forms are accepted as an instance, a reference
// wrapper or a pointer; wrappers are removed as needed before the call.
// Plain functions are applied directly: only a reference wrapper argument
// is accepted where its wrapped pointer is.
func (d *Dispatcher) Invoke(f any, args ...any) ([]any, error) {
	run, err := d.prepare(f, args)
	if err != nil {
		return nil, err
	}
	return run()
}

// Check returns nil if Invoke would accept f and args, or the error it
// would return otherwise. Nothing is called.
func (d *Dispatcher) Check(f any, args ...any) error {
	_, err := d.prepare(f, args)
	return err
}

// Invocable reports whether Invoke would accept f and args.
func (d *Dispatcher) Invocable(f any, args ...any) bool {
	return d.Check(f, args...) == nil
}

// Invoke calls f with args using Default.
func Invoke(f any, args ...any) ([]any, error) {
	return Default.Invoke(f, args...)
}

// Check reports whether Default would accept f and args.
func Check(f any, args ...any) error {
	return Default.Check(f, args...)
}

// Invocable reports whether Default would accept f and args.
func Invocable(f any, args ...any) bool {
	return Default.Invocable(f, args...)
}

// Call invokes f using Default and returns its first result as an R.
func Call[R any](f any, args ...any) (R, error) {
	return CallWith[R](Default, f, args...)
}

// CallWith invokes f using d and returns its first result as an R.
// If the last result of f is a non-nil error, that error is returned.
//
// Example:
//
//	n, err := CallWith[int](d, strconv.Atoi, "42")
func CallWith[R any](d *Dispatcher, f any, args ...any) (R, error) {
	var zero R
	out, err := d.Invoke(f, args...)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, callError(describe(f), -1, fmt.Errorf("%w: no results", ErrResultType))
	}
	if e, ok := out[len(out)-1].(error); ok && len(out) > 1 && e != nil {
		return zero, e
	}
	if out[0] == nil {
		return zero, nil
	}
	r, ok := out[0].(R)
	if !ok {
		return zero, callError(describe(f), -1, fmt.Errorf("%w: %T is not %s", ErrResultType, out[0], reflect.TypeOf((*R)(nil)).Elem()))
	}
	return r, nil
}

// MustCall is like Call but panics on error.
func MustCall[R any](f any, args ...any) R {
	r, err := Call[R](f, args...)
	if err != nil {
		panic(err)
	}
	return r
}
