package functional

import (
	"github.com/samber/lo"
)

// ============================================================================
// Basic Functions
// ============================================================================

// Identity returns its argument unchanged.
// It is the left and right identity of Compose.
func Identity[T any](x T) T {
	return x
}

// Nothing accepts any arguments and does nothing.
//
// Example:
//
//	onDone := Nothing // placeholder callback
func Nothing(...any) {}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Flip swaps the two arguments of a binary function.
//
// Example:
//
//	prepend := Flip(func(xs []int, x int) []int { return append(xs, x) })
//	prepend(1, nil) // [1]
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// ============================================================================
// Composition
// ============================================================================

// Compose returns the mathematical composition f∘g, so that
// Compose(f, g)(x) == f(g(x)).
//
// Example:
//
//	toString := func(n int) string { return strconv.Itoa(n) }
//	bang := Compose(Plus("!"), toString)
//	bang(42) // "42!"
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 returns f∘g∘h.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return Compose(Compose(f, g), h)
}

// Compose4 returns f∘g∘h∘k.
func Compose4[A, B, C, D, E any](f func(D) E, g func(C) D, h func(B) C, k func(A) B) func(A) E {
	return Compose(Compose3(f, g, h), k)
}

// Pipe is left to right composition: Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose(g, f)
}

// Pipe3 is left to right composition of three functions.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose3(h, g, f)
}

// ComposeAll composes any number of functions over a single type, rightmost
// first. With no functions it is Identity.
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		return lo.ReduceRight(fns, func(acc T, fn func(T) T, _ int) T {
			return fn(acc)
		}, x)
	}
}

// ============================================================================
// Superposition
// ============================================================================

// Superpose applies g and h to the same argument and combines the results
// with f: Superpose(f, g, h)(x) == f(g(x), h(x)).
func Superpose[A, B, C, R any](f func(B, C) R, g func(A) B, h func(A) C) func(A) R {
	return func(a A) R {
		return f(g(a), h(a))
	}
}

// Superpose2 is Superpose for binary inner functions:
// Superpose2(f, g, h)(x, y) == f(g(x, y), h(x, y)).
//
// Example:
//
//	mul := func(x, y int) int { return x * y }
//	add := func(x, y int) int { return x + y }
//	ge := func(x, y int) bool { return x >= y }
//	Superpose2(ge, mul, add)(2, 3) // true
func Superpose2[A1, A2, B, C, R any](f func(B, C) R, g func(A1, A2) B, h func(A1, A2) C) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		return f(g(a1, a2), h(a1, a2))
	}
}

// SuperposeN applies every g to the argument, in order, and passes all of
// the results to f.
func SuperposeN[A, B, R any](f func(...B) R, gs ...func(A) B) func(A) R {
	return func(a A) R {
		results := lo.Map(gs, func(g func(A) B, _ int) B {
			return g(a)
		})
		return f(results...)
	}
}
