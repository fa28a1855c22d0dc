package reactive

// keyedEntry is one live mapping produced by MapKeyed: the template's
// output value, plus the child scope that owns whatever the template
// allocated to produce it.
type keyedEntry[V any] struct {
	value V
	scope *Scope
}

// MapKeyed diffs source against its previous snapshot by key, reusing the
// output for any key that survives unchanged and only running template for
// keys that are new. Disposal of removed keys is computed as a complete
// set and executed in full before any new child is allocated, so a
// departing key's cleanup always runs ahead of an unrelated arriving key's
// template.
//
// key must be unique across one snapshot of source; a collision panics
// with ErrDuplicateKey unless the owning root was created with
// WithDebugDuplicateKeys(false), in which case the later item silently
// wins the key.
func MapKeyed[T any, K comparable, V any](
	s *Scope,
	source ReadSignal[[]T],
	key func(item T) K,
	template func(child *Scope, item T) V,
) ReadSignal[[]V] {
	s.assertLive()

	out := CreateSignal(s, ([]V)(nil))
	entries := make(map[K]*keyedEntry[V])
	first := true

	CreateEffect(s, func() {
		items := source.Get()

		keys := make([]K, len(items))
		seen := make(map[K]bool, len(items))
		last := make(map[K]T, len(items))
		for i, item := range items {
			k := key(item)
			if seen[k] {
				if s.debugDuplicateKy {
					panic(ErrDuplicateKey)
				}
			}
			seen[k] = true
			keys[i] = k
			last[k] = item
		}

		for k, e := range entries {
			if !seen[k] {
				e.scope.Dispose()
				delete(entries, k)
			}
		}

		result := make([]V, len(items))
		for i := range items {
			k := keys[i]
			e, ok := entries[k]
			if !ok {
				e = &keyedEntry[V]{}
				UntrackVoid(func() {
					s.CreateChildScope(func(child *Scope) {
						e.scope = child
						e.value = template(child, last[k])
					})
				})
				entries[k] = e
			}
			result[i] = e.value
		}

		if first {
			first = false
			out.value = result
			return
		}
		out.Set(result)
	})

	return out.AsReadSignal()
}
