package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type themeContext struct {
	name string
}

func TestContext(t *testing.T) {
	t.Run("child scope sees a value provided by an ancestor", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			ProvideContext(s, themeContext{name: "dark"})

			s.CreateChildScope(func(child *Scope) {
				child.CreateChildScope(func(grandchild *Scope) {
					got := UseContext[themeContext](grandchild)
					assert.Equal(t, "dark", got.name)
				})
			})
		})
	})

	t.Run("missing context panics", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			assert.PanicsWithValue(t, ErrContextMissing, func() {
				UseContext[themeContext](s)
			})
		})
	})

	t.Run("try use context reports absence without panicking", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			_, ok := TryUseContext[themeContext](s)
			assert.False(t, ok)
		})
	})

	t.Run("providing the same type twice in one scope panics", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			ProvideContext(s, themeContext{name: "dark"})
			assert.PanicsWithValue(t, ErrDuplicateContext, func() {
				ProvideContext(s, themeContext{name: "light"})
			})
		})
	})

	t.Run("a child may shadow its parent's context", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			ProvideContext(s, themeContext{name: "dark"})

			s.CreateChildScope(func(child *Scope) {
				ProvideContext(child, themeContext{name: "light"})
				assert.Equal(t, "light", UseContext[themeContext](child).name)
			})

			assert.Equal(t, "dark", UseContext[themeContext](s).name)
		})
	})
}
