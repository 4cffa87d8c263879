package functional

// Ref is a reference wrapper: a copyable handle to a value owned elsewhere.
// It lets a value that must not be copied be bound, curried or passed as a
// receiver, and is unwrapped transparently by the dispatch package.
//
// Example:
//
//	cfg := loadConfig()
//	withCfg := BindFirst(render, Cref(&cfg))
type Ref[T any] struct {
	p *T
}

// Cref wraps p in a Ref.
func Cref[T any](p *T) Ref[T] {
	return Ref[T]{p: p}
}

// Get returns the referenced value.
func (r Ref[T]) Get() T {
	return *r.p
}

// Ptr returns the wrapped pointer.
func (r Ref[T]) Ptr() *T {
	return r.p
}

// UnwrapRef returns the wrapped pointer as an any.
func (r Ref[T]) UnwrapRef() any {
	return r.p
}

// Field selects a field of a struct C, the way a data member pointer does.
// The same Field reads the field through an instance, a pointer or a Ref.
//
// Example:
//
//	type User struct{ Name string }
//	name := Field[User, string](func(u *User) *string { return &u.Name })
//
//	name.Get(user)
//	name.Of(&user)
//	name.Through(Cref(&user))
type Field[C, V any] func(*C) *V

// Get reads the field of c.
func (f Field[C, V]) Get(c C) V {
	return *f(&c)
}

// Of reads the field through a pointer.
func (f Field[C, V]) Of(p *C) V {
	return *f(p)
}

// Through reads the field through a reference wrapper.
func (f Field[C, V]) Through(r Ref[C]) V {
	return *f(r.p)
}

// Set writes the field through a pointer.
func (f Field[C, V]) Set(p *C, v V) {
	*f(p) = v
}

// Func returns the field read as a plain function, ready for Compose.
func (f Field[C, V]) Func() func(C) V {
	return f.Get
}

// Project reads the field from recv, which may be a C, a *C or a Ref[C].
// It reports false for any other receiver and for nil pointers.
func (f Field[C, V]) Project(recv any) (any, bool) {
	switch r := recv.(type) {
	case C:
		return f.Get(r), true
	case *C:
		if r == nil {
			return nil, false
		}
		return f.Of(r), true
	case Ref[C]:
		if r.p == nil {
			return nil, false
		}
		return f.Through(r), true
	}
	return nil, false
}

// OnRef adapts a pointer-receiver method expression to take a Ref.
//
// Example:
//
//	area := OnRef((*Rect).Area)
//	area(Cref(&rect))
func OnRef[C, R any](m func(*C) R) func(Ref[C]) R {
	return func(r Ref[C]) R {
		return m(r.p)
	}
}

// OnValue adapts a pointer-receiver method expression to take a value.
// The method runs on a copy, so mutations are not visible to the caller.
func OnValue[C, R any](m func(*C) R) func(C) R {
	return func(c C) R {
		return m(&c)
	}
}
