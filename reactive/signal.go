package reactive

import "slices"

// SignalEmitter is the subscriber-list half of a signal: the part that is
// separable so a read-only facet of a signal can still be subscribed to.
// Subscriber identity is the stable pointer address of a callbackCell;
// ordering is insertion order, and that order is observable —
// triggerSubscribers walks it in reverse so an outer (earlier-created)
// effect re-runs, and re-subscribes its inner effects, before any stale
// inner effect would otherwise fire on its own.
type SignalEmitter struct {
	subscribers []*callbackCell
}

// subscribe inserts cb under its pointer identity. Re-subscribing an
// already-present callback is a no-op, matching the idempotence invariant
// tested in signal_test.go.
func (e *SignalEmitter) subscribe(cb *callbackCell) {
	if slices.Contains(e.subscribers, cb) {
		return
	}
	e.subscribers = append(e.subscribers, cb)
}

// unsubscribe removes cb by identity. Removing an absent callback is a
// no-op.
func (e *SignalEmitter) unsubscribe(cb *callbackCell) {
	if i := slices.Index(e.subscribers, cb); i >= 0 {
		e.subscribers = slices.Delete(e.subscribers, i, i+1)
	}
}

// track registers this emitter as a dependency of whatever effect is
// currently on top of the execution stack. It is a no-op when nothing is
// tracking (no effect running, or inside Untrack).
func (e *SignalEmitter) track() {
	if t := activeTracker(); t != nil {
		t.addDependency(e)
	}
}

// triggerSubscribers snapshots the subscriber list and walks it in reverse
// insertion order. For each entry it attempts to upgrade the weak handle
// (cell.live) and, if that succeeds, acquire the callback's reentrancy
// permit (cell.running); a callback already on the stack — the
// reentrant-self-update case — is skipped silently rather than recursing.
// Entries whose weak handle failed to upgrade are lazily removed.
func (e *SignalEmitter) triggerSubscribers(rec Recorder) {
	snapshot := slices.Clone(e.subscribers)
	for i := len(snapshot) - 1; i >= 0; i-- {
		cell := snapshot[i]
		if !cell.live {
			e.unsubscribe(cell)
			continue
		}
		cell.invoke()
	}
	if rec != nil {
		rec.ObserveSignalWrite()
	}
}

// ReadSignal is the read-only facet of a Signal. Every *Signal[T] satisfies
// this interface; derived primitives (Memo, Selector, Reducer, MapKeyed,
// MapIndexed) hand back ReadSignal so callers cannot write to a value they
// do not own.
type ReadSignal[T any] interface {
	// Get returns the current value, recording a dependency on it if
	// called while an effect is executing.
	Get() T
	// GetUntracked returns the current value without recording a
	// dependency, regardless of whether an effect is executing.
	GetUntracked() T
}

// Signal is a mutable reactive cell: a versioned value plus a subscriber
// list. Reads track; writes replace the value and notify subscribers
// unconditionally (Signal has no equality check — Selector is the
// primitive for skip-on-equal).
type Signal[T any] struct {
	scope   *Scope
	emitter SignalEmitter
	value   T
}

// CreateSignal allocates a Signal[T] on s's arena, seeded with initial.
// CreateSignal is a free function, not a Scope method, because Go methods
// cannot carry their own type parameters.
func CreateSignal[T any](s *Scope, initial T) *Signal[T] {
	s.assertLive()
	return arenaAlloc(s.arena, Signal[T]{scope: s, value: initial})
}

// Get returns the current value, tracking a dependency on this signal if
// an effect is currently executing.
func (s *Signal[T]) Get() T {
	s.emitter.track()
	return s.value
}

// GetUntracked returns the current value without tracking a dependency,
// even if an effect is currently executing.
func (s *Signal[T]) GetUntracked() T {
	return s.value
}

// Set replaces the value and triggers every subscriber, in reverse
// insertion order, regardless of whether the new value equals the old one.
func (s *Signal[T]) Set(value T) {
	s.value = value
	s.emitter.triggerSubscribers(s.scope.metrics)
}

// Update transforms the value in place via fn and then notifies
// subscribers exactly as Set would.
func (s *Signal[T]) Update(fn func(*T)) {
	fn(&s.value)
	s.emitter.triggerSubscribers(s.scope.metrics)
}

// AsReadSignal narrows this Signal to its read-only facet for handing to
// callers that should not be able to write it.
func (s *Signal[T]) AsReadSignal() ReadSignal[T] {
	return s
}
