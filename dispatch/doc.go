/*
Package dispatch resolves calls whose shape is only known at run time.

It is the dynamic half of the functional module: where the parent package
is fully checked by the compiler, dispatch decides from the argument types
of each call which code path runs.

# Uniform Invocation

Invoke calls anything that can be called, with one syntax:

	Invoke(strings.ToUpper, "go")                 // a plain function
	Invoke((*Rect).Scale, functional.Cref(&r), 2.0) // a Ref passes as its pointer
	Invoke(Receiver(Rect.Area), &r)               // a method expression
	Invoke(Method("Area"), &r)                    // a method by name
	Invoke(FieldOf("W"), r)                       // a field, like a data member
	Invoke(functional.Field[Rect, float64](func(r *Rect) *float64 { return &r.W }), &r)

Plain functions are applied directly: a func(int) does not accept an *int.
The member forms (Receiver, Method, FieldOf and Projector) take a receiver
that may be an instance, a reference wrapper (RefUnwrapper) or a pointer or
smart pointer (Pointer); wrappers are peeled until the receiver fits.
Argument types are checked before anything runs, and Check and Invocable
answer "would this call be accepted" without calling.

# Overload Selection

FirstOf picks the first candidate whose parameters accept the arguments:

	describe, _ := FirstOf(
	    func(n int) string { return "int" },
	    Deleted(func(s string) string { return "string" }),
	    func(v any) string { return "other" },
	)

	describe.Call(1)    // ["int"]
	describe.Call(1.5)  // ["other"]
	describe.Call("x")  // ErrDeleted: strings are deliberately unsupported

A Deleted candidate does not fall through: if it is the first match, the
call is refused.

# Composition, Currying and Binding

Compose, Superpose, Curry and BindFront work on any callable Invoke
accepts and check the types they can see as early as they can. A Curried
is one of those callables, so curried functions compose:

	add, _ := Curry(func(x, y int) int { return x + y })
	inc, _ := add.Apply(1)
	f, _ := Compose(strconv.Itoa, inc)
	f(41) // ["42"]

# Errors

Every refusal is a *CallError wrapping one of the sentinel errors, so
callers test with errors.Is:

	if _, err := describe.Call("x"); errors.Is(err, ErrDeleted) {
	    // ...
	}

# Configuration

New builds a Dispatcher from options; the package-level functions use
Default.

	d := New(WithConversions(), WithLogger(func(s string) { log.Println(s) }))
*/
package dispatch
