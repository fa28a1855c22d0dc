package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeyed(t *testing.T) {
	t.Run("preserves output order and reuses unchanged keys", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			items := CreateSignal(s, []int{1, 2, 3})
			templateRuns := 0

			mapped := MapKeyed(s, items.AsReadSignal(),
				func(n int) int { return n },
				func(child *Scope, n int) string {
					templateRuns++
					return "v" + string(rune('0'+n))
				},
			)

			assert.Equal(t, []string{"v1", "v2", "v3"}, mapped.Get())
			assert.Equal(t, 3, templateRuns)

			items.Set([]int{3, 1, 2})
			assert.Equal(t, []string{"v3", "v1", "v2"}, mapped.Get())
			assert.Equal(t, 3, templateRuns, "reordering must not rerun any template")
		})
	})

	t.Run("disposes removed keys before allocating new ones", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			var log []string
			items := CreateSignal(s, []int{1, 2})

			mapped := MapKeyed(s, items.AsReadSignal(),
				func(n int) int { return n },
				func(child *Scope, n int) int {
					child.OnCleanup(func() { log = append(log, "dispose") })
					log = append(log, "alloc")
					return n
				},
			)
			mapped.Get()

			log = nil
			items.Set([]int{2, 3})
			assert.Equal(t, []string{"dispose", "alloc"}, log)
		})
	})

	t.Run("duplicate keys panic by default", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			items := CreateSignal(s, []int{1, 1})
			assert.Panics(t, func() {
				MapKeyed(s, items.AsReadSignal(),
					func(n int) int { return n },
					func(child *Scope, n int) int { return n },
				).Get()
			})
		})
	})

	t.Run("duplicate keys are tolerated when debug checking is disabled", func(t *testing.T) {
		dispose := CreateRoot(func(s *Scope) {
			items := CreateSignal(s, []int{1, 1})
			assert.NotPanics(t, func() {
				MapKeyed(s, items.AsReadSignal(),
					func(n int) int { return n },
					func(child *Scope, n int) int { return n },
				).Get()
			})
		}, WithDebugDuplicateKeys(false))
		dispose()
	})
}

func TestMapIndexed(t *testing.T) {
	t.Run("reuses indices whose item is unchanged", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			items := CreateSignal(s, []int{1, 2, 3})
			templateRuns := 0

			mapped := MapIndexed(s, items.AsReadSignal(), func(child *Scope, n int) int {
				templateRuns++
				return n * 10
			})

			assert.Equal(t, []int{10, 20, 30}, mapped.Get())
			assert.Equal(t, 3, templateRuns)

			items.Set([]int{1, 99, 3})
			assert.Equal(t, []int{10, 990, 30}, mapped.Get())
			assert.Equal(t, 4, templateRuns, "only index 1 changed, so only it reruns")
		})
	})

	t.Run("shrinking the input disposes the trailing scopes", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			disposed := 0
			items := CreateSignal(s, []int{1, 2, 3})

			mapped := MapIndexed(s, items.AsReadSignal(), func(child *Scope, n int) int {
				child.OnCleanup(func() { disposed++ })
				return n
			})
			mapped.Get()

			items.Set([]int{1})
			assert.Equal(t, 2, disposed)
		})
	})

	t.Run("growing the input allocates new trailing scopes", func(t *testing.T) {
		CreateScopeImmediate(func(s *Scope) {
			items := CreateSignal(s, []int{1})
			mapped := MapIndexed(s, items.AsReadSignal(), func(child *Scope, n int) int {
				return n
			})
			mapped.Get()

			items.Set([]int{1, 2, 3})
			assert.Equal(t, []int{1, 2, 3}, mapped.Get())
		})
	})
}
