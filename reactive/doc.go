// Package reactive implements a scoped, fine-grained, push-based reactive
// runtime: signals (mutable cells with subscriber lists), effects
// (computations that re-execute when their dependencies change), and scopes
// (hierarchical ownership regions that bound the lifetime of signals,
// effects, and context values).
//
// The runtime is strictly synchronous and single-threaded per goroutine: a
// signal written on one goroutine must only be read and written by effects
// created on that same goroutine. There is no background scheduler, no
// batching, and no async dispatch in the core; a host layer (a UI renderer,
// a CLI, a test) is expected to call into the runtime synchronously and add
// any batching or scheduling it needs on top.
//
// # Quick start
//
//	dispose := reactive.CreateRoot(func(s *reactive.Scope) {
//	    count := reactive.CreateSignal(s, 0)
//	    doubled := reactive.Memo(s, func() int { return count.Get() * 2 })
//
//	    reactive.CreateEffect(s, func() {
//	        fmt.Println("doubled:", doubled.Get())
//	    })
//
//	    count.Set(5)
//	})
//	defer dispose()
//
// # Ownership
//
// Every signal, effect, and child scope is owned by exactly one Scope and is
// released, deterministically, when that Scope is disposed. Disposal walks
// child scopes depth-first, stops effects from re-executing, runs cleanup
// callbacks with tracking disabled, and finally discards the scope's arena
// in reverse allocation order.
package reactive
