package cellgraph

import (
	"time"

	"go.uber.org/zap"
)

// startCycle runs one propagation cycle. The trigger set is the given
// ids plus anything sitting in the deferred queue (batched writes,
// pending retries). Scratch state is rebuilt from scratch, so a cycle
// aborted by a panic in a wrapped computation does not poison the next
// one.
func (cx *Context) startCycle(triggers []NodeID) {
	if len(cx.queue) > 0 {
		triggers = append(cx.drainQueue(), triggers...)
	}
	triggers = canonicalTriggerKey(triggers)
	if len(triggers) == 0 {
		return
	}

	// A write from inside a computation starts a nested cycle; keep it
	// from consuming the outer cycle's scratch.
	cx.cycleDepth++
	prevToVisit, prevOutcomes := cx.toVisit, cx.outcomes
	defer func() {
		cx.toVisit, cx.outcomes = prevToVisit, prevOutcomes
		cx.cycleDepth--
	}()

	start := time.Now()
	endSpan := cx.startCycleSpan(len(triggers))

	reach := cx.reachableFrom(triggers)
	cx.toVisit = make(map[NodeID]struct{}, len(reach))
	for id := range reach {
		cx.toVisit[id] = struct{}{}
	}
	cx.outcomes = make(map[NodeID]Outcome, len(reach))

	for _, id := range triggers {
		cx.advance(id, true)
	}

	cx.observeCycle(time.Since(start))
	endSpan(len(cx.outcomes))

	cx.logger.Debug("cellgraph: cycle complete",
		zap.Int("triggers", len(triggers)),
		zap.Int("reachable", len(reach)),
		zap.Int("processed", len(cx.outcomes)),
	)
}

// advance resolves the node's dependencies recursively, recomputes the
// node if they changed, and pushes the change to its observers. Each
// node is processed at most once per cycle: membership in toVisit is
// consumed on entry, and the result is recorded in outcomes.
func (cx *Context) advance(id NodeID, forced bool) {
	if _, ok := cx.toVisit[id]; !ok {
		return
	}
	delete(cx.toVisit, id)

	combined := OutcomeChanged
	if !forced {
		combined = OutcomeUnchanged
		for dep := range cx.rev[id] {
			if _, done := cx.outcomes[dep]; !done {
				cx.advance(dep, false)
			}
			// A dependency with no recorded outcome is outside this
			// cycle's reach and counts as unchanged.
			if res, ok := cx.outcomes[dep]; ok {
				combined = combined.join(res)
			}
		}
	}

	out := combined
	if combined == OutcomeChanged {
		out = cx.nodes[id].recompute()
	}
	cx.outcomes[id] = out

	switch out {
	case OutcomeChanged:
		for obs := range cx.fwd[id] {
			cx.advance(obs, false)
		}
	case OutcomePending:
		cx.enqueue(id)
		cx.observePendingRetry()
	}
}

// Flush runs a cycle over any deferred ids (pending retries queued
// outside a batch). It is a no-op while a batch is open or when the
// queue is empty.
func (cx *Context) Flush() {
	if cx.batchDepth > 0 || len(cx.queue) == 0 {
		return
	}
	cx.startCycle(nil)
}

func (cx *Context) enqueue(id NodeID) {
	cx.queue = append(cx.queue, id)
}

func (cx *Context) drainQueue() []NodeID {
	q := cx.queue
	cx.queue = nil
	return q
}
