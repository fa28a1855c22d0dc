package reactive

import "sync/atomic"

// rcSignalState is the shared state behind every clone of one RcSignal: a
// value, its subscriber emitter, and a reference count. Go's garbage
// collector already reclaims this once every clone has gone out of scope;
// refs exists purely so callers can observe how many handles have been
// made (it is never decremented), mirroring the Rc<RefCell<..>> debugging affordance the Rust original
// exposes, not to drive collection decisions of our own.
type rcSignalState[T any] struct {
	emitter SignalEmitter
	value   T
	refs    atomic.Int64
}

// RcSignal is a signal that is not owned by any Scope: it lives as long as
// at least one clone of it is reachable, making it the primitive for state
// that must outlive the scope that created it.
type RcSignal[T any] struct {
	inner *rcSignalState[T]
}

// NewRcSignal creates a scope-independent signal seeded with initial, with
// a reference count of one.
func NewRcSignal[T any](initial T) RcSignal[T] {
	st := &rcSignalState[T]{value: initial}
	st.refs.Store(1)
	return RcSignal[T]{inner: st}
}

// Get returns the current value, tracking a dependency if called while an
// effect is executing.
func (r RcSignal[T]) Get() T {
	r.inner.emitter.track()
	return r.inner.value
}

// GetUntracked returns the current value without tracking a dependency.
func (r RcSignal[T]) GetUntracked() T {
	return r.inner.value
}

// Set replaces the value and notifies every subscriber across every clone
// of this signal.
func (r RcSignal[T]) Set(value T) {
	r.inner.value = value
	r.inner.emitter.triggerSubscribers(nil)
}

// Clone returns a new handle to the same underlying state, incrementing
// the reference count. The returned value and r observe each other's
// writes.
func (r RcSignal[T]) Clone() RcSignal[T] {
	r.inner.refs.Add(1)
	return RcSignal[T]{inner: r.inner}
}

// RefCount reports how many handles to this signal have been made: the
// original returned by NewRcSignal plus one per Clone call. It is never
// decremented, so handles that have become unreachable are still counted.
// It is informational only: nothing in the runtime acts on it.
func (r RcSignal[T]) RefCount() int64 {
	return r.inner.refs.Load()
}
