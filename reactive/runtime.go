package reactive

import (
	"sync"

	"github.com/petermattis/goid"
)

// tracker is the minimal surface a currently-executing computation exposes
// to the signals it reads. Effect is the only implementation; memo/selector
// ride on top of an Effect so they never need their own.
type tracker interface {
	addDependency(e *SignalEmitter)
}

// execState is the per-goroutine execution stack signals consult when read.
// A nil entry marks an Untrack boundary: reads below it in the call chain
// did request tracking, but everything between the nil and the next real
// entry above it must not record a dependency.
type execState struct {
	stack []tracker
}

var goroutineStates sync.Map // int64 (goroutine id) -> *execState

// currentExecState returns (creating if necessary) the execution stack for
// the calling goroutine. This is the idiomatic-Go stand-in for a thread
// local: Go has no goroutine-local storage, so the goroutine id supplied by
// goid keys a side table instead. Signals written from a goroutine other
// than the one an effect was created on are, per the runtime's contract,
// undefined; this mechanism does not attempt to detect that case.
func currentExecState() *execState {
	gid := goid.Get()
	if v, ok := goroutineStates.Load(gid); ok {
		return v.(*execState)
	}
	st := &execState{}
	actual, _ := goroutineStates.LoadOrStore(gid, st)
	return actual.(*execState)
}

// activeTracker returns the computation currently at the top of the
// execution stack, or nil if nothing is tracking (either the stack is empty
// or the top entry is an Untrack boundary).
func activeTracker() tracker {
	st := currentExecState()
	if len(st.stack) == 0 {
		return nil
	}
	return st.stack[len(st.stack)-1]
}

func execDepth() int {
	return len(currentExecState().stack)
}

func pushTracker(t tracker) {
	st := currentExecState()
	st.stack = append(st.stack, t)
}

// popTracker pops the top of the stack, asserting that the entry being
// popped is exactly t and that the stack is left at preLen. A mismatch
// means some earlier push/pop pair failed to balance, which is always a
// runtime bug rather than a recoverable condition.
func popTracker(t tracker, preLen int) {
	st := currentExecState()
	n := len(st.stack)
	if n == 0 || st.stack[n-1] != t {
		panic(ErrStackImbalance)
	}
	st.stack = st.stack[:n-1]
	if len(st.stack) != preLen {
		panic(ErrStackImbalance)
	}
}

// Untrack runs f with the execution stack's tracking suspended: signal
// reads performed by f (directly, not inside a nested effect f creates) do
// not add a dependency to whatever effect is currently running. Untrack is
// safe to call with no effect currently running, and is panic-safe: the
// tracking boundary is always restored, even if f panics.
func Untrack[R any](f func() R) R {
	st := currentExecState()
	st.stack = append(st.stack, nil)
	preLen := len(st.stack)
	defer func() {
		n := len(st.stack)
		if n != preLen {
			panic(ErrStackImbalance)
		}
		st.stack = st.stack[:n-1]
	}()
	return f()
}

// UntrackVoid is Untrack for callbacks with no return value.
func UntrackVoid(f func()) {
	Untrack(func() struct{} {
		f()
		return struct{}{}
	})
}

func runUntracked(f func()) {
	UntrackVoid(f)
}
