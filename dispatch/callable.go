package dispatch

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

// maxPeel bounds how many wrapper layers are removed from a receiver.
const maxPeel = 4

// RefUnwrapper is implemented by reference wrappers such as functional.Ref.
// UnwrapRef returns the wrapped pointer.
type RefUnwrapper interface {
	UnwrapRef() any
}

// Pointer is implemented by smart pointers. Deref returns the pointee.
type Pointer interface {
	Deref() any
}

// Projector is implemented by typed field selectors such as functional.Field.
type Projector interface {
	Project(recv any) (any, bool)
}

// Dynamic is implemented by callables that decide for themselves which
// arguments they accept, such as *Overloads.
type Dynamic interface {
	// Check returns nil if Call would accept args.
	Check(args ...any) error
	Call(args ...any) ([]any, error)
}

// FieldSelector reads a struct field by name, the way a data member pointer
// does. Invoke it with exactly one receiver.
type FieldSelector struct {
	name string
}

// FieldOf selects the exported field name, promoted fields included.
//
// Example:
//
//	out, _ := Invoke(FieldOf("Name"), &user)
func FieldOf(name string) FieldSelector {
	return FieldSelector{name: name}
}

func (s FieldSelector) String() string {
	return "field " + s.name
}

// MethodSelector calls a method by name, the way a member function pointer
// does. Invoke it with the receiver followed by the method's arguments.
type MethodSelector struct {
	name string
}

// Method selects the exported method name, promoted methods included.
//
// Example:
//
//	out, _ := Invoke(Method("Scale"), &rect, 2.0)
func Method(name string) MethodSelector {
	return MethodSelector{name: name}
}

func (s MethodSelector) String() string {
	return "method " + s.name
}

// ReceiverFunc is a function whose first argument is a receiver.
type ReceiverFunc struct {
	fn any
}

// Receiver marks f, usually a method expression, as taking a receiver
// first. When f does not accept the first argument as is, Invoke peels
// reference wrappers, smart pointers and pointers from it until f does.
// Plain functions get no such treatment.
//
// Example:
//
//	area := Receiver(Rect.Area)
//	Invoke(area, r)
//	Invoke(area, &r)
//	Invoke(area, functional.Cref(&r))
func Receiver(f any) ReceiverFunc {
	return ReceiverFunc{fn: f}
}

func (r ReceiverFunc) String() string {
	return "receiver " + describe(r.fn)
}

// DeletedOverload marks a candidate of FirstOf as deliberately unsupported.
type DeletedOverload struct {
	fn any
}

// Deleted marks f as a deleted overload. When f is the first candidate
// accepting a call, the call fails with ErrDeleted.
func Deleted(f any) DeletedOverload {
	return DeletedOverload{fn: f}
}

func (o DeletedOverload) String() string {
	return "deleted " + describe(o.fn)
}

// isNilPointer reports whether a is a typed nil pointer. Such a value may
// still satisfy RefUnwrapper or Pointer through value methods that cannot
// be called on it.
func isNilPointer(a any) bool {
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// peel removes one wrapper layer from a receiver: a reference wrapper, a
// smart pointer or a non-nil pointer.
func peel(a any) (any, bool) {
	if a == nil || isNilPointer(a) {
		return nil, false
	}
	switch r := a.(type) {
	case RefUnwrapper:
		return r.UnwrapRef(), true
	case Pointer:
		return r.Deref(), true
	}
	if v := reflect.ValueOf(a); v.Kind() == reflect.Pointer {
		return v.Elem().Interface(), true
	}
	return nil, false
}

// unref returns the pointer held by a reference wrapper.
func unref(a any) (any, bool) {
	r, ok := a.(RefUnwrapper)
	if !ok || isNilPointer(a) {
		return nil, false
	}
	return r.UnwrapRef(), true
}

// funcValue returns f as a reflect.Value if it is a plain, non-nil function
// that the package does not treat specially.
func funcValue(f any) (reflect.Value, bool) {
	switch f.(type) {
	case Func, Dynamic, Projector:
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return reflect.Value{}, false
	}
	return v, true
}

func checkCallable(f any) error {
	switch c := f.(type) {
	case nil:
		return callError("<nil>", -1, ErrNotCallable)
	case Func:
		if c == nil {
			return callError(describe(f), -1, ErrNotCallable)
		}
		return nil
	case Curried:
		if c.d == nil || c.fn == nil {
			return callError(describe(f), -1, ErrNotCallable)
		}
		return nil
	case ReceiverFunc:
		v, ok := funcValue(c.fn)
		if !ok || v.Type().NumIn() == 0 {
			return callError(describe(f), -1, fmt.Errorf("%w: a receiver function needs a parameter", ErrNotCallable))
		}
		return nil
	case Dynamic, Projector, FieldSelector, MethodSelector:
		return nil
	}
	if _, ok := funcValue(f); !ok {
		return callError(describe(f), -1, ErrNotCallable)
	}
	return nil
}

func describe(f any) string {
	switch s := f.(type) {
	case nil:
		return "<nil>"
	case FieldSelector, MethodSelector, DeletedOverload, ReceiverFunc, Curried:
		return fmt.Sprint(s)
	}
	v := reflect.ValueOf(f)
	if v.Kind() == reflect.Func && !v.IsNil() {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return fmt.Sprintf("%T", f)
}

func argTypes(args []any) string {
	return strings.Join(lo.Map(args, func(a any, _ int) string {
		return fmt.Sprintf("%T", a)
	}), ", ")
}

// ============================================================================
// Parameter Matching
// ============================================================================

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// arityFits reports whether n arguments fill ft's parameter list.
func arityFits(ft reflect.Type, n int) bool {
	if ft.IsVariadic() {
		return n >= ft.NumIn()-1
	}
	return n == ft.NumIn()
}

// arityAllows reports whether n arguments may still grow into a full
// parameter list.
func arityAllows(ft reflect.Type, n int) bool {
	return ft.IsVariadic() || n <= ft.NumIn()
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// accept returns a as a value for a parameter of type pt.
func (d *Dispatcher) accept(pt reflect.Type, a any) (reflect.Value, bool) {
	if a == nil {
		if isNillable(pt.Kind()) {
			return reflect.Zero(pt), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(pt) {
		return v, true
	}
	if d.conversions && isNumeric(v.Kind()) && isNumeric(pt.Kind()) {
		return v.Convert(pt), true
	}
	return reflect.Value{}, false
}

// acceptType reports whether a value of static type at is always accepted
// for a parameter of type pt.
func (d *Dispatcher) acceptType(pt, at reflect.Type) bool {
	if at.AssignableTo(pt) {
		return true
	}
	return d.conversions && isNumeric(at.Kind()) && isNumeric(pt.Kind())
}

var (
	refUnwrapperType = reflect.TypeOf((*RefUnwrapper)(nil)).Elem()
	pointerType      = reflect.TypeOf((*Pointer)(nil)).Elem()
)

// undecided reports whether values of static type at may still be accepted
// at run time even though the type itself is not: interfaces may hold an
// acceptable value and wrappers may be peeled.
func undecided(at reflect.Type) bool {
	return at.Kind() == reflect.Interface ||
		at.Kind() == reflect.Pointer ||
		at.Implements(refUnwrapperType) ||
		at.Implements(pointerType)
}
