package functional

import (
	"fmt"
)

// Endo is a function from a type to itself.
// Endo values form a monoid: Empty is the identity and Compose chains them.
//
// Example:
//
//	shout := Endo[string](strings.ToUpper).
//	    Then(Plus("!")).
//	    WithLogging(func(msg string) { log.Print(msg) })
//
//	shout("hi") // "HI!"
type Endo[T any] func(T) T

// Empty returns the identity function (Monoid identity).
func (f Endo[T]) Empty() Endo[T] {
	return Identity[T]
}

// Compose returns f∘g: g runs first, then f (Monoid operation).
func (f Endo[T]) Compose(g Endo[T]) Endo[T] {
	return Compose(f, g)
}

// Then runs next on the result of f.
func (f Endo[T]) Then(next func(T) T) Endo[T] {
	return Pipe(f, next)
}

// Repeat applies f n times. For n <= 0 it is the identity.
func (f Endo[T]) Repeat(n int) Endo[T] {
	fns := make([]func(T) T, max(n, 0))
	for i := range fns {
		fns[i] = f
	}
	return ComposeAll(fns...)
}

// Tap calls fn with the input and output of every application.
func (f Endo[T]) Tap(fn func(in, out T)) Endo[T] {
	return func(x T) T {
		out := f(x)
		fn(x, out)
		return out
	}
}

// WithLogging reports every application to logger.
func (f Endo[T]) WithLogging(logger func(string)) Endo[T] {
	return f.Tap(func(in, out T) {
		logger(fmt.Sprintf("Applied: %v -> %v", in, out))
	})
}

// Traced wraps f so that each call is reported to logger under name.
func Traced[A, B any](name string, logger func(string), f func(A) B) func(A) B {
	return func(a A) B {
		logger(fmt.Sprintf("Calling: %s(%v)", name, a))
		b := f(a)
		logger(fmt.Sprintf("Returned: %s -> %v", name, b))
		return b
	}
}
