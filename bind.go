package functional

import (
	"cmp"
)

// ============================================================================
// Argument Binding
// ============================================================================

// BindFirst fixes the first argument of a binary function.
func BindFirst[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// BindFirst3 fixes the first argument of a ternary function.
func BindFirst3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// BindFront fixes the first two arguments of a ternary function.
//
// Example:
//
//	sum := func(x, y, z int) int { return x + y + z }
//	plus3 := BindFront(sum, 1, 2)
//	plus3(4) // 7
func BindFront[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}

// BindLast fixes the second argument of a binary function.
func BindLast[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}

// rightBinder turns op into a function that takes the right operand and
// returns op with that operand bound: rightBinder(op)(y)(x) == op(x, y).
func rightBinder[A, B, R any](op func(A, B) R) func(B) func(A) R {
	return Compose(Curry2(BindFirst[B, A, R]), Flip[A, B, R])(op)
}

// ============================================================================
// Operators
// ============================================================================

// Integer is the set of integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of types supporting arithmetic.
type Number interface {
	Integer | ~float32 | ~float64
}

// Addable is the set of types supporting the + operator.
type Addable interface {
	Number | ~string
}

// Plus returns a function adding rhs to its argument.
// The argument is the left operand: Plus("!")("hi") == "hi!".
func Plus[T Addable](rhs T) func(T) T {
	return rightBinder(func(x, y T) T { return x + y })(rhs)
}

// Minus returns a function subtracting rhs from its argument.
func Minus[T Number](rhs T) func(T) T {
	return rightBinder(func(x, y T) T { return x - y })(rhs)
}

// Times returns a function multiplying its argument by rhs.
func Times[T Number](rhs T) func(T) T {
	return rightBinder(func(x, y T) T { return x * y })(rhs)
}

// Divided returns a function dividing its argument by rhs.
// Integer division by zero panics, as the / operator does.
func Divided[T Number](rhs T) func(T) T {
	return rightBinder(func(x, y T) T { return x / y })(rhs)
}

// Mod returns a function computing its argument modulo rhs.
func Mod[T Integer](rhs T) func(T) T {
	return rightBinder(func(x, y T) T { return x % y })(rhs)
}

// Equals returns a predicate reporting whether its argument equals rhs.
func Equals[T comparable](rhs T) Pred[T] {
	return rightBinder(func(x, y T) bool { return x == y })(rhs)
}

// Differs returns a predicate reporting whether its argument differs from rhs.
func Differs[T comparable](rhs T) Pred[T] {
	return rightBinder(func(x, y T) bool { return x != y })(rhs)
}

// LessThan returns a predicate reporting whether its argument is < rhs.
func LessThan[T cmp.Ordered](rhs T) Pred[T] {
	return rightBinder(cmp.Less[T])(rhs)
}

// GreaterThan returns a predicate reporting whether its argument is > rhs.
func GreaterThan[T cmp.Ordered](rhs T) Pred[T] {
	return rightBinder(func(x, y T) bool { return x > y })(rhs)
}

// GreaterOrEqualTo returns a predicate reporting whether its argument is >= rhs.
func GreaterOrEqualTo[T cmp.Ordered](rhs T) Pred[T] {
	return rightBinder(func(x, y T) bool { return x >= y })(rhs)
}

// LessOrEqualTo returns a predicate reporting whether its argument is <= rhs.
func LessOrEqualTo[T cmp.Ordered](rhs T) Pred[T] {
	return rightBinder(func(x, y T) bool { return x <= y })(rhs)
}

// Matches returns a predicate reporting whether the key extracted from its
// argument equals key.
//
// Example:
//
//	byName := Matches("alice", func(u User) string { return u.Name })
func Matches[T any, K comparable](key K, extract func(T) K) Pred[T] {
	return Compose(Equals(key), extract)
}
