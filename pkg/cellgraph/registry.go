package cellgraph

import (
	"slices"

	"go.uber.org/zap"
)

// register assigns the next id to n, stores it in the arena, and
// invalidates the reachability cache unconditionally: the new node may
// insert itself into any existing reachability path.
func (cx *Context) register(n *node) NodeID {
	cx.nextID++
	n.id = cx.nextID
	cx.nodes[n.id] = n
	cx.reach.invalidate()

	cx.logger.Debug("cellgraph: node registered",
		zap.Uint64("id", uint64(n.id)),
		zap.Stringer("kind", n.kind),
		zap.String("name", n.name),
	)
	return n.id
}

// connect idempotently adds the edge observed -> observer to both
// adjacency structures. Edges are never removed.
func (cx *Context) connect(observed, observer NodeID) {
	obs := cx.fwd[observed]
	if obs == nil {
		obs = make(map[NodeID]struct{})
		cx.fwd[observed] = obs
	}
	if _, ok := obs[observer]; ok {
		return
	}
	obs[observer] = struct{}{}

	deps := cx.rev[observer]
	if deps == nil {
		deps = make(map[NodeID]struct{})
		cx.rev[observer] = deps
	}
	deps[observed] = struct{}{}
}

// DependenciesOf returns the ids the given node observes, sorted.
func (cx *Context) DependenciesOf(id NodeID) []NodeID {
	return sortedIDs(cx.rev[id])
}

// ObserversOf returns the ids observing the given node, sorted.
func (cx *Context) ObserversOf(id NodeID) []NodeID {
	return sortedIDs(cx.fwd[id])
}

// Size returns the number of registered nodes.
func (cx *Context) Size() int {
	return len(cx.nodes)
}

func sortedIDs(set map[NodeID]struct{}) []NodeID {
	if len(set) == 0 {
		return nil
	}
	ids := make([]NodeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
