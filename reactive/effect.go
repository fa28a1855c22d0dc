package reactive

import (
	"slices"
	"time"
)

// effectState tracks one effect's lifecycle: Idle -> Running on trigger or
// initial create, Running -> Idle at the end of the callback, and
// *->Disposed on owning-scope disposal, after which no further runs are
// possible.
type effectState int

const (
	effectIdle effectState = iota
	effectRunning
	effectDisposed
)

// callbackCell is the addressable cell a SignalEmitter's subscriber map
// holds a "weak" reference to. The cell's address is the subscriber
// identity; live is flipped false at disposal so that any emitter still
// holding this cell treats it as gone on its next trigger walk, without
// depending on garbage-collector timing the way a real weak pointer would.
// running implements the reentrancy permit: an emitter skips a cell that is
// already mid-invoke rather than recursing into it.
type callbackCell struct {
	live    bool
	running bool
	effect  *Effect
}

func (c *callbackCell) invoke() {
	if !c.live || c.running {
		return
	}
	c.running = true
	defer func() { c.running = false }()
	c.effect.run()
}

// Effect is a re-runnable computation: it tracks which emitters it read
// during its last run and re-subscribes to exactly that set every time it
// executes.
type Effect struct {
	cell  *callbackCell
	scope *Scope
	deps  []*SignalEmitter
	state effectState

	fn       func()
	fnScoped func(child *Scope)

	innerScope *Scope // for CreateEffectScoped: the child scope of the last run
}

func (e *Effect) addDependency(em *SignalEmitter) {
	if !slices.Contains(e.deps, em) {
		e.deps = append(e.deps, em)
	}
	em.subscribe(e.cell)
}

func (e *Effect) clearDependencies() {
	for _, em := range e.deps {
		em.unsubscribe(e.cell)
	}
	e.deps = e.deps[:0]
}

// run clears the previous dependency set, pushes itself onto the execution
// stack, invokes the callback (rebuilding the dependency set as a side
// effect of every track() call), pops, and asserts the stack balanced. A
// panicking callback is still popped and returned to Idle before the panic
// is either absorbed by the nearest ancestor OnError handler or left to
// propagate.
func (e *Effect) run() {
	if e.state == effectDisposed {
		return
	}

	e.clearDependencies()
	e.state = effectRunning

	preLen := execDepth()
	pushTracker(e)

	var start time.Time
	if e.scope.metrics != nil {
		start = time.Now()
	}

	defer func() {
		popTracker(e, preLen)

		if e.state != effectDisposed {
			e.state = effectIdle
		}

		if e.scope.metrics != nil {
			e.scope.metrics.ObserveEffectRun(time.Since(start))
		}

		if r := recover(); r != nil {
			if e.scope.handlePanic(r) {
				return
			}
			panic(r)
		}
	}()

	if e.innerScope != nil {
		e.innerScope.Dispose()
		e.innerScope = nil
	}

	if e.fnScoped != nil {
		e.innerScope = e.scope.newDetachedChild()
		e.fnScoped(e.innerScope)
	} else {
		e.fn()
	}
}

// dispose permanently stops this effect from re-executing: it clears its
// dependency set (so emitters drop it immediately rather than lazily), and
// flips its cell's weak handle so any emitter that still references it
// treats it as gone. Safe to call more than once.
func (e *Effect) dispose() {
	if e.state == effectDisposed {
		return
	}
	e.clearDependencies()
	e.cell.live = false
	e.state = effectDisposed

	if e.innerScope != nil {
		e.innerScope.Dispose()
		e.innerScope = nil
	}
}

// CreateEffect registers f as a re-runnable callback owned by s, invoking
// it once eagerly (synchronously, on the calling goroutine) to populate its
// initial dependency set.
func CreateEffect(s *Scope, f func()) {
	s.assertLive()
	cell := &callbackCell{live: true}
	e := &Effect{cell: cell, scope: s, fn: f}
	cell.effect = e
	s.effects = append(s.effects, e)
	cell.invoke()
}

// CreateEffectScoped is CreateEffect, except each run is wrapped in a fresh
// child scope: the scope from the previous run is disposed immediately
// before the callback runs again, and on the owning scope's own disposal.
// The callback receives the current run's scope so it can allocate signals,
// register cleanups, or create further children that live only as long as
// this one run's result is current.
func CreateEffectScoped(s *Scope, f func(inner *Scope)) {
	s.assertLive()
	cell := &callbackCell{live: true}
	e := &Effect{cell: cell, scope: s, fnScoped: f}
	cell.effect = e
	s.effects = append(s.effects, e)
	cell.invoke()
}
