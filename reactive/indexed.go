package reactive

// indexedEntry is one live mapping produced by MapIndexed: the input item
// that produced value (kept around so the next run can equality-check it),
// the value itself, and the child scope that owns it.
type indexedEntry[T comparable, V any] struct {
	item  T
	value V
	scope *Scope
}

// MapIndexed is MapKeyed addressed by position instead of an explicit key:
// index i is reused only if old[i] == new[i]; otherwise its child scope is
// disposed and rebuilt. Indices beyond the new length are disposed;
// indices beyond the old length are newly allocated. As with MapKeyed, the
// full disposal pass runs to completion before any new child is allocated.
func MapIndexed[T comparable, V any](
	s *Scope,
	source ReadSignal[[]T],
	template func(child *Scope, item T) V,
) ReadSignal[[]V] {
	s.assertLive()

	out := CreateSignal(s, ([]V)(nil))
	var entries []*indexedEntry[T, V]
	first := true

	CreateEffect(s, func() {
		items := source.Get()

		for i := len(items); i < len(entries); i++ {
			entries[i].scope.Dispose()
		}
		for i := 0; i < len(entries) && i < len(items); i++ {
			if entries[i].item != items[i] {
				entries[i].scope.Dispose()
				entries[i] = nil
			}
		}
		if len(items) < len(entries) {
			entries = entries[:len(items)]
		}

		result := make([]V, len(items))
		for i, item := range items {
			var e *indexedEntry[T, V]
			if i < len(entries) {
				e = entries[i]
			}
			if e == nil {
				e = &indexedEntry[T, V]{item: item}
				UntrackVoid(func() {
					s.CreateChildScope(func(child *Scope) {
						e.scope = child
						e.value = template(child, item)
					})
				})
				if i < len(entries) {
					entries[i] = e
				} else {
					entries = append(entries, e)
				}
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
