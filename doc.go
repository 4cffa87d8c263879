/*
Package functional provides generic combinators for building functions out
of other functions.

# Overview

Everything in this package is checked by the compiler. Combinators take
functions and return new functions; none of them keep state beyond the
values they capture when they are built.

For calls whose shape is only known at run time (dispatch on argument
types, member access by name, variadic currying) see the dispatch
subpackage.

# Key Features

  - Composition: Compose, Pipe and ComposeAll chain functions
  - Superposition: Superpose feeds one argument to several functions
  - Currying: Curry2, Curry3 and Curry4 split calls into steps
  - Binding: BindFirst, BindFront and BindLast fix arguments
  - Predicates: AllOf, AnyOf, NoneOf and the Pred type
  - Overloads: FirstOf picks the first case accepting a value, and Reject
    marks a case as deliberately unsupported

# Quick Example

	toString := func(n int) string { return strconv.Itoa(n) }

	f := Compose3(Plus("789"), Plus("456"), toString)
	f(123) // "123456789"

# Core Concepts

Monoids: Endo and Pred provide Empty() and a composition operation:

	Endo[string](strings.TrimSpace).Compose(strings.ToLower)
	isPositive.And(isEven)

Right-bound operators: the operator helpers take their right operand first,
which reads naturally in pipelines:

	slices.IndexFunc(nums, GreaterThan(10))
	lo.Map(names, func(s string, _ int) string { return Plus("!")(s) })

Reference wrappers: Ref passes a value without copying it, and Field reads
a struct field through an instance, a pointer or a Ref alike.

# Overload Selection

	area := FirstOf(
	    On[Shape](func(c Circle) float64 { return math.Pi * c.R * c.R }),
	    Reject(On[Shape](func(l Line) float64 { return 0 })),
	    Default(func(s Shape) float64 { return s.Area() }),
	)

	area.Call(Circle{R: 1}) // 3.14159..., nil
	area.Call(Line{})       // 0, ErrRejected

A rejected case never falls through to the cases after it.

# Package Import

	import fn "github.com/Pure-Company/functional"
*/
package functional
