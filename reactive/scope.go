package reactive

import "reflect"

// Scope is a node in the ownership tree: it owns an ordered list of child
// scopes (addressable by a stable key so one can be disposed out of
// order), an arena, the effects it created, cleanup callbacks, and a
// type-keyed context map. A Scope's lifetime strictly contains the
// lifetime of everything it owns; nothing allocated in a scope is
// reachable once that scope is disposed.
//
// Go has no borrow checker, so the rule that a scope handed to a closure
// must not escape that closure's lifetime is enforced as a runtime contract
// instead of a compile-time one: every mutating Scope operation asserts the
// scope is still live and panics with ErrDisposedScope if it isn't. Callers
// that stash a *Scope somewhere and use it after its disposer ran will hit
// that assertion rather than corrupt runtime state silently.
type Scope struct {
	parent    *Scope
	parentKey uint64
	hasParent bool

	children     []childEntry
	nextChildKey uint64

	arena    *Arena
	effects  []*Effect
	cleanups []func()

	context map[reflect.Type]any

	errorHandlers []func(any)

	disposed bool

	metrics          Recorder
	debugDuplicateKy bool
}

type childEntry struct {
	key   uint64
	scope *Scope
}

// RootOption configures a root scope at creation. Options are inherited by
// every descendant scope created under the root.
type RootOption func(*rootConfig)

type rootConfig struct {
	metrics              Recorder
	debugDuplicateKeys   bool
}

func newRootConfig() rootConfig {
	return rootConfig{debugDuplicateKeys: true}
}

// WithMetrics attaches a Recorder that observes effect runs, signal writes,
// scope disposals, and panics absorbed by OnError. Nil (the default)
// disables all instrumentation; recording a metric is always a synchronous
// call on the calling goroutine, so this adds no scheduling of its own.
func WithMetrics(rec Recorder) RootOption {
	return func(c *rootConfig) { c.metrics = rec }
}

// WithDebugDuplicateKeys controls whether MapKeyed panics (true, the
// default) or silently keeps the last item (false) when two items in one
// input snapshot produce the same key.
func WithDebugDuplicateKeys(enabled bool) RootOption {
	return func(c *rootConfig) { c.debugDuplicateKeys = enabled }
}

func newScope(parent *Scope, cfg rootConfig) *Scope {
	return &Scope{
		parent:           parent,
		arena:            newArena(),
		context:          make(map[reflect.Type]any),
		metrics:          cfg.metrics,
		debugDuplicateKy: cfg.debugDuplicateKeys,
	}
}

// CreateRoot allocates a heap-stable root scope, invokes f with a borrow of
// it, and returns a disposer closure. The scope passed to f must not be
// stored anywhere that outlives f; see the Scope doc comment for how that
// rule is enforced in a language without borrow checking.
func CreateRoot(f func(s *Scope), opts ...RootOption) (dispose func()) {
	cfg := newRootConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := newScope(nil, cfg)
	f(root)
	return root.Dispose
}

// CreateScopeImmediate is CreateRoot, except the disposer runs immediately
// after f returns instead of being handed back to the caller.
func CreateScopeImmediate(f func(s *Scope), opts ...RootOption) {
	dispose := CreateRoot(f, opts...)
	dispose()
}

// CreateChildScope creates a child of s whose lifetime is a subset of s's,
// addressable by a stable key in s's child list so it can be disposed out
// of order. f receives the new child scope and runs synchronously, before
// CreateChildScope returns.
func (s *Scope) CreateChildScope(f func(child *Scope)) (dispose func()) {
	s.assertLive()

	key := s.nextChildKey
	s.nextChildKey++

	child := newScope(s, rootConfig{metrics: s.metrics, debugDuplicateKeys: s.debugDuplicateKy})
	child.parentKey = key
	child.hasParent = true

	s.children = append(s.children, childEntry{key: key, scope: child})

	f(child)

	return child.Dispose
}

// newDetachedChild creates a child scope that inherits s's configuration
// and context-ancestor chain but is not registered in s.children: its
// lifetime is managed entirely by its creator (CreateEffectScoped uses this
// for the per-run inner scope it tears down and rebuilds itself).
func (s *Scope) newDetachedChild() *Scope {
	child := newScope(s, rootConfig{metrics: s.metrics, debugDuplicateKeys: s.debugDuplicateKy})
	return child
}

// OnCleanup registers cb to run at disposal, with tracking disabled, in
// reverse registration order relative to other cleanups on this same
// scope.
func (s *Scope) OnCleanup(cb func()) {
	s.assertLive()
	s.cleanups = append(s.cleanups, cb)
}

// OnError registers a panic handler consulted, nearest-ancestor-first, when
// an effect owned anywhere under this scope panics. This is additive, not a
// replacement for the default failure behavior: if no handler anywhere in
// the ancestor chain claims the panic, it propagates to the caller's
// goroutine exactly as if OnError did not exist.
func (s *Scope) OnError(cb func(err any)) {
	s.assertLive()
	s.errorHandlers = append(s.errorHandlers, cb)
}

// handlePanic walks from s up to the root looking for a scope with OnError
// handlers. Every handler registered on the nearest such scope is invoked,
// in registration order, and the panic is considered handled.
// Returns false if no ancestor scope has one, in which case the caller
// should let the panic continue to propagate.
func (s *Scope) handlePanic(err any) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if len(cur.errorHandlers) == 0 {
			continue
		}
		if cur.metrics != nil {
			cur.metrics.ObservePanicCaught()
		}
		for _, h := range cur.errorHandlers {
			h(err)
		}
		return true
	}
	return false
}

func (s *Scope) assertLive() {
	if s.disposed {
		panic(ErrDisposedScope)
	}
}

// removeFromParent detaches s from its parent's child list. It is a no-op
// if s has no parent, or if the parent has already cleared its own child
// list (the top-down disposal case), making both disposal orderings —
// parent-first and child-first — converge on the same end state.
func (s *Scope) removeFromParent() {
	if !s.hasParent || s.parent == nil {
		return
	}
	p := s.parent
	for i, c := range p.children {
		if c.key == s.parentKey {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// Dispose releases every resource s owns, in a fixed order: child scopes
// (depth-first) -> effects -> cleanups (run untracked) -> context values ->
// arena entries (reverse insertion order). Idempotent: calling Dispose
// twice is a no-op the second time.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	children := s.children
	s.children = nil
	for _, c := range children {
		c.scope.Dispose()
	}

	effects := s.effects
	s.effects = nil
	for _, e := range effects {
		e.dispose()
	}

	cleanups := s.cleanups
	s.cleanups = nil
	runUntracked(func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	})

	s.context = nil

	s.arena.dispose()

	if s.metrics != nil {
		s.metrics.ObserveScopeDispose()
	}

	s.removeFromParent()
}

// CreateRef allocates value on s's arena and returns a stable pointer to
// it, valid for the scope's lifetime. Unlike CreateSignal it is not
// reactive: it is for plain owned data a closure needs to outlive its own
// creating call without going through a signal.
func CreateRef[T any](s *Scope, value T) *T {
	s.assertLive()
	return arenaAlloc(s.arena, value)
}

