package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeDisposalOrder(t *testing.T) {
	t.Run("children, effects, cleanups, then arena in reverse", func(t *testing.T) {
		var log []string
		dispose := CreateRoot(func(s *Scope) {
			s.CreateChildScope(func(child *Scope) {
				child.OnCleanup(func() { log = append(log, "child cleanup") })
			})

			CreateEffect(s, func() {})
			s.OnCleanup(func() { log = append(log, "cleanup a") })
			s.OnCleanup(func() { log = append(log, "cleanup b") })

			CreateRef(s, disposableValue{onDispose: func() { log = append(log, "arena value") }})
		})

		dispose()

		assert.Equal(t, []string{"child cleanup", "cleanup b", "cleanup a", "arena value"}, log)
	})

	t.Run("dispose is idempotent", func(t *testing.T) {
		var calls int
		dispose := CreateRoot(func(s *Scope) {
			s.OnCleanup(func() { calls++ })
		})
		dispose()
		dispose()
		assert.Equal(t, 1, calls)
	})

	t.Run("operations on a disposed scope panic", func(t *testing.T) {
		var captured *Scope
		dispose := CreateRoot(func(s *Scope) {
			captured = s
		})
		dispose()

		assert.PanicsWithValue(t, ErrDisposedScope, func() {
			CreateSignal(captured, 0)
		})
	})

	t.Run("child scope disposed out of order removes itself from the parent", func(t *testing.T) {
		var outerDisposed bool
		dispose := CreateRoot(func(s *Scope) {
			childDispose := s.CreateChildScope(func(child *Scope) {
				child.OnCleanup(func() {})
			})
			s.OnCleanup(func() { outerDisposed = true })
			childDispose()
			childDispose()
		})
		dispose()
		assert.True(t, outerDisposed)
	})

	t.Run("cleanups run untracked", func(t *testing.T) {
		dispose := CreateRoot(func(s *Scope) {
			count := CreateSignal(s, 0)
			runs := 0
			CreateEffect(s, func() {
				runs++
			})
			s.OnCleanup(func() {
				count.Get()
			})
			_ = runs
		})
		assert.NotPanics(t, func() { dispose() })
	})
}

func TestCreateRef(t *testing.T) {
	CreateScopeImmediate(func(s *Scope) {
		ref := CreateRef(s, 10)
		*ref = 11
		assert.Equal(t, 11, *ref)
	})
}

type disposableValue struct {
	onDispose func()
}

func (d disposableValue) Dispose() { d.onDispose() }
