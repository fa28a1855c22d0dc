package reactive

import "reflect"

// typeKey derives the map key ProvideContext/UseContext index by: T's own
// reflect.Type, computed without requiring a live value of T (so the zero
// value of an interface or pointer type still produces the right key).
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ProvideContext stores value as the single value of type T visible to s
// and its descendants. Panics with ErrDuplicateContext if a value of this
// exact type has already been provided in this scope (not an ancestor —
// shadowing a parent's context from a child is allowed).
func ProvideContext[T any](s *Scope, value T) {
	s.assertLive()
	key := typeKey[T]()
	if _, exists := s.context[key]; exists {
		panic(ErrDuplicateContext)
	}
	s.context[key] = value
}

// TryUseContext walks s and its ancestors for a value of type T, returning
// it and true on success, or the zero value and false if no provider is
// found anywhere in the chain.
func TryUseContext[T any](s *Scope) (T, bool) {
	key := typeKey[T]()
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.context[key]; ok {
			return v.(T), true
		}
	}
	var zero T
	return zero, false
}

// UseContext is TryUseContext, except it panics with ErrContextMissing
// instead of returning ok=false.
func UseContext[T any](s *Scope) T {
	v, ok := TryUseContext[T](s)
	if !ok {
		panic(ErrContextMissing)
	}
	return v
}
