package functional

import (
	"github.com/samber/lo"
)

// Pred is a predicate over values of type T.
// It provides monoid operations under conjunction and logical combinators.
//
// Example:
//
//	isPositive := Pred[int](func(x int) bool { return x > 0 })
//	isEven := Pred[int](func(x int) bool { return x%2 == 0 })
//
//	isPositiveEven := isPositive.And(isEven)
type Pred[T any] func(T) bool

// Empty returns the predicate that accepts everything (identity of And).
func (p Pred[T]) Empty() Pred[T] {
	return func(T) bool { return true }
}

// And accepts values accepted by both predicates.
func (p Pred[T]) And(other Pred[T]) Pred[T] {
	return AllOf(p, other)
}

// Or accepts values accepted by either predicate.
func (p Pred[T]) Or(other Pred[T]) Pred[T] {
	return AnyOf(p, other)
}

// Not accepts exactly the values p rejects.
func (p Pred[T]) Not() Pred[T] {
	return Inverse(p)
}

// Inverse negates a predicate.
func Inverse[T any](p Pred[T]) Pred[T] {
	return func(x T) bool {
		return !p(x)
	}
}

// AllOf accepts a value when every predicate accepts it.
// Evaluation stops at the first rejection. AllOf() accepts everything.
func AllOf[T any](ps ...Pred[T]) Pred[T] {
	return func(x T) bool {
		return lo.EveryBy(ps, func(p Pred[T]) bool { return p(x) })
	}
}

// AnyOf accepts a value when at least one predicate accepts it.
// Evaluation stops at the first acceptance. AnyOf() accepts nothing.
func AnyOf[T any](ps ...Pred[T]) Pred[T] {
	return func(x T) bool {
		return lo.SomeBy(ps, func(p Pred[T]) bool { return p(x) })
	}
}

// NoneOf accepts a value when no predicate accepts it.
func NoneOf[T any](ps ...Pred[T]) Pred[T] {
	return Inverse(AnyOf(ps...))
}
