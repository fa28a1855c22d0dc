package reactive

import "errors"

// Error taxonomy. All of these are programmer errors: none are recoverable
// at runtime in the sense of "try again and it might work". They are raised
// as panics whose value is the sentinel itself, unwrapped, so a recovered
// panic value compares equal to it (and errors.Is matches it) if a caller
// wants to report something friendlier than a crash.
var (
	// ErrContextMissing is raised by UseContext when no ancestor scope
	// (including the receiver) has provided a value of the requested type.
	ErrContextMissing = errors.New("reactive: no context value of this type in the ancestor chain")

	// ErrDuplicateContext is raised by ProvideContext when a value of the
	// exact same type has already been provided in this scope.
	ErrDuplicateContext = errors.New("reactive: a context value of this type is already provided in this scope")

	// ErrStackImbalance is raised when an effect's push/pop of the
	// execution stack does not balance, which should only happen if the
	// runtime itself has a bug.
	ErrStackImbalance = errors.New("reactive: effect execution stack is imbalanced")

	// ErrDuplicateKey is raised by MapKeyed when two items in one input
	// snapshot produce the same key, and WithDebugDuplicateKeys(true) (the
	// default) is in effect.
	ErrDuplicateKey = errors.New("reactive: duplicate key in MapKeyed input")

	// ErrDisposedScope is raised when a Scope operation (CreateSignal,
	// CreateEffect, CreateChildScope, OnCleanup, ProvideContext, ...) is
	// attempted after the scope's disposer has already run.
	ErrDisposedScope = errors.New("reactive: scope has already been disposed")
)
