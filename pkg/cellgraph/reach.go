package cellgraph

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// reachEntry memoizes the forward-reachable set for one exact trigger
// set. The full sorted key is stored alongside the digest so a hash
// collision can never return the wrong set.
type reachEntry struct {
	key []NodeID
	set map[NodeID]struct{}
}

// reachCache memoizes reachability per trigger set, bucketed by a
// 64-bit digest of the canonical (sorted, deduplicated) key.
type reachCache struct {
	buckets map[uint64][]reachEntry
}

func newReachCache() *reachCache {
	return &reachCache{buckets: make(map[uint64][]reachEntry)}
}

// invalidate drops every entry. Called on each node registration.
func (c *reachCache) invalidate() {
	clear(c.buckets)
}

func (c *reachCache) lookup(key []NodeID, digest uint64) (map[NodeID]struct{}, bool) {
	for _, e := range c.buckets[digest] {
		if slices.Equal(e.key, key) {
			return e.set, true
		}
	}
	return nil, false
}

func (c *reachCache) store(key []NodeID, digest uint64, set map[NodeID]struct{}) {
	c.buckets[digest] = append(c.buckets[digest], reachEntry{key: key, set: set})
}

// canonicalTriggerKey returns a sorted, deduplicated copy of ids.
func canonicalTriggerKey(ids []NodeID) []NodeID {
	key := slices.Clone(ids)
	slices.Sort(key)
	return slices.Compact(key)
}

// digestTriggerKey hashes a canonical key with xxhash.
func digestTriggerKey(key []NodeID) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, id := range key {
		binary.LittleEndian.PutUint64(buf[:], uint64(id))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// reachableFrom returns the set of ids forward-reachable from the
// given triggers, triggers included. Results are memoized per trigger
// set until the next node registration. Callers must not mutate the
// returned set.
func (cx *Context) reachableFrom(triggers []NodeID) map[NodeID]struct{} {
	key := canonicalTriggerKey(triggers)
	digest := digestTriggerKey(key)

	if set, ok := cx.reach.lookup(key, digest); ok {
		cx.observeReachLookup(true)
		return set
	}
	cx.observeReachLookup(false)

	set := make(map[NodeID]struct{})
	var visit func(NodeID)
	visit = func(id NodeID) {
		if _, seen := set[id]; seen {
			return
		}
		set[id] = struct{}{}
		for obs := range cx.fwd[id] {
			visit(obs)
		}
	}
	for _, id := range key {
		visit(id)
	}

	cx.reach.store(key, digest, set)
	return set
}
