package functional

// Curry2 turns a binary function into a chain of unary ones.
//
// Example:
//
//	add := Curry2(func(x, y int) int { return x + y })
//	add(1)(2) // 3
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 turns a ternary function into a chain of unary ones.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(func(b B, c C) R {
			return f(a, b, c)
		})
	}
}

// Curry4 turns a function of four arguments into a chain of unary ones.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R {
			return f(a, b, c, d)
		})
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}
