package reactive

// Disposer is implemented by values allocated on a Scope's arena that need
// to run cleanup logic of their own at arena-disposal time. Most allocated
// values don't need this — Go's garbage collector reclaims memory on its
// own — but a value passed to CreateRef that implements it gets a
// deterministic teardown call at scope disposal rather than depending on GC
// timing. No type in this package implements it itself.
type Disposer interface {
	Dispose()
}

// Arena is an append-only container of heterogeneously typed owned values,
// tied to one Scope. Allocation returns a reference that stays valid for
// the arena's lifetime; the arena never relocates an entry once allocated.
// On disposal, entries that implement Disposer are torn down in reverse
// insertion order, so a later-allocated value — which may have captured an
// earlier one in a closure — is finalized first.
type Arena struct {
	disposers []func()
}

func newArena() *Arena {
	return &Arena{}
}

// arenaAlloc stores value on the arena and returns a stable pointer to it.
// Generic methods don't exist in Go, so this is a free function rather than
// an Arena method, mirroring how the rest of the package's generic
// constructors (CreateSignal, CreateRef, ...) are free functions too.
func arenaAlloc[T any](a *Arena, value T) *T {
	ptr := new(T)
	*ptr = value

	if d, ok := any(ptr).(Disposer); ok {
		a.disposers = append(a.disposers, d.Dispose)
	} else {
		a.disposers = append(a.disposers, nil)
	}

	return ptr
}

// dispose tears down every entry that registered a Disposer, in reverse
// insertion order, and empties the container. Idempotent: calling it twice
// is a no-op the second time since the disposer list is already empty.
func (a *Arena) dispose() {
	for i := len(a.disposers) - 1; i >= 0; i-- {
		if d := a.disposers[i]; d != nil {
			d()
		}
	}
	a.disposers = nil
}
