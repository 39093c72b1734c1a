// Package cellgraph provides a fine-grained reactive dependency-graph
// engine. Callers declare state cells, derived computations (memos),
// lazily pulled derived cells, side-effecting cells, and asynchronous
// derived cells; reading a cell while another cell's computation is
// executing wires a dependency edge automatically, and writing a state
// cell propagates the change through the discovered graph in dependency
// order.
//
// # Core Types
//
// Every cell belongs to a Context, which owns the node arena, the
// dependency edges, and the propagation machinery:
//
//	cx := cellgraph.NewContext()
//	count := cellgraph.NewState(cx, 0)
//	doubled := cellgraph.NewMemo(cx, func() int { return count.Get() * 2 })
//
//	count.Set(5)
//	_ = doubled.Get() // 10
//
// Memo cells recompute during propagation when a dependency changed.
// Lazy cells are only marked dirty during propagation and re-run their
// computation on the next read. Effect cells run side effects; their
// boolean return decides whether the change keeps propagating. Async
// memo cells produce a Deferred value and report a pending outcome
// until it is resolved.
//
// # Batching
//
// Multiple writes can be coalesced into a single propagation cycle:
//
//	cx.Batch(func() {
//	    a.Set(1)
//	    b.Set(2)
//	    c.Set(3)
//	})
//	// One cycle, not three.
//
// # Concurrency
//
// A Context is single-threaded and cooperative: a propagation cycle
// runs to completion inside the call stack of the triggering write or
// fire. The Context performs no internal locking; a multi-goroutine
// host must serialize all cell construction, reads, writes, and
// Deferred resolutions (one exclusive lock, or a single-actor loop).
//
// # Errors
//
// The engine defines no error taxonomy of its own. A panic raised
// inside a wrapped computation unwinds the in-progress cycle; cycle
// scratch state is rebuilt at the start of every cycle, so the Context
// remains usable afterwards. Computations that want isolation should
// recover internally.
//
// The dependency graph is assumed acyclic. Cyclic wiring is not
// detected and causes unbounded recursion.
package cellgraph
