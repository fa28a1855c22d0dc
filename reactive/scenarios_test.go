package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScenarioCounter is S1: an effect that writes twice its input into a
// second signal.
func TestScenarioCounter(t *testing.T) {
	CreateScopeImmediate(func(s *Scope) {
		in := CreateSignal(s, 0)
		out := CreateSignal(s, 0)

		CreateEffect(s, func() {
			out.Set(in.Get() * 2)
		})

		assert.Equal(t, 0, out.Get())
		in.Set(3)
		assert.Equal(t, 6, out.Get())
	})
}

// TestScenarioNestedEffectRunsOnce is S2: a write to a shared dependency
// must cause the outer effect to run exactly once and the inner effect it
// recreates to run exactly once, never twice.
func TestScenarioNestedEffectRunsOnce(t *testing.T) {
	CreateScopeImmediate(func(s *Scope) {
		a := CreateSignal(s, 0)
		outerRuns, innerRuns := 0, 0

		CreateEffectScoped(s, func(inner *Scope) {
			a.Get()
			outerRuns++
			CreateEffect(inner, func() {
				innerRuns++
			})
		})

		outerRuns, innerRuns = 0, 0
		a.Set(1)

		assert.Equal(t, 1, outerRuns)
		assert.Equal(t, 1, innerRuns)
	})
}

// TestScenarioUntrackedMemo is S3: a memo that reads its source through
// Untrack never reruns, so its value freezes at creation time.
func TestScenarioUntrackedMemo(t *testing.T) {
	CreateScopeImmediate(func(s *Scope) {
		sig := CreateSignal(s, 1)
		m := Memo(s, func() int {
			return Untrack(func() int { return sig.Get() }) * 2
		})

		assert.Equal(t, 2, m.Get())
		sig.Set(5)
		assert.Equal(t, 2, m.Get())
	})
}

// TestScenarioConditionalDependency is S4: toggling which branch an effect
// reads must unsubscribe it from the branch it no longer reads.
func TestScenarioConditionalDependency(t *testing.T) {
	CreateScopeImmediate(func(s *Scope) {
		cond := CreateSignal(s, true)
		x := CreateSignal(s, 0)
		y := CreateSignal(s, 100)
		runs := 0

		CreateEffect(s, func() {
			if cond.Get() {
				x.Get()
			} else {
				y.Get()
			}
			runs++
		})

		runs = 0
		y.Set(200)
		assert.Equal(t, 0, runs, "y is not a dependency while cond is true")

		cond.Set(false)
		runs = 0
		y.Set(300)
		assert.Equal(t, 1, runs, "y became a dependency once cond flipped")

		x.Set(999)
		assert.Equal(t, 1, runs, "x is no longer a dependency")
	})
}

// TestScenarioKeyedReuse is S5: reordering a keyed list reuses every
// element with zero template invocations, and replacing a key disposes the
// departing element before constructing the arriving one.
func TestScenarioKeyedReuse(t *testing.T) {
	type item struct {
		key   int
		value string
	}

	CreateScopeImmediate(func(s *Scope) {
		var events []string
		items := CreateSignal(s, []item{{1, "A"}, {2, "B"}})

		mapped := MapKeyed(s, items.AsReadSignal(),
			func(it item) int { return it.key },
			func(child *Scope, it item) string {
				events = append(events, "alloc "+it.value)
				child.OnCleanup(func() { events = append(events, "dispose "+it.value) })
				return "v" + it.value
			},
		)

		assert.Equal(t, []string{"vA", "vB"}, mapped.Get())

		events = nil
		items.Set([]item{{2, "B"}, {1, "A"}})
		assert.Equal(t, []string{"vB", "vA"}, mapped.Get())
		assert.Empty(t, events, "reordering must not allocate or dispose anything")

		events = nil
		items.Set([]item{{2, "B"}, {3, "C"}})
		assert.Equal(t, []string{"vB", "vC"}, mapped.Get())
		assert.Equal(t, []string{"dispose A", "alloc C"}, events)
	})
}

// TestScenarioContextThroughChild is S6: a value provided at the root is
// visible from an arbitrarily nested descendant scope.
func TestScenarioContextThroughChild(t *testing.T) {
	CreateScopeImmediate(func(s *Scope) {
		ProvideContext(s, 42)

		s.CreateChildScope(func(child *Scope) {
			assert.Equal(t, 42, UseContext[int](child))
		})
	})
}
