package cellgraph

// Outcome is the tri-state result of recomputing a node. It doubles as
// the combined status of a node's dependencies during a propagation
// cycle.
type Outcome uint8

const (
	// OutcomeUnchanged means the new value was judged equal to the
	// previous one; propagation stops at this node.
	OutcomeUnchanged Outcome = iota

	// OutcomeChanged means the value differs; the node's observers are
	// visited next.
	OutcomeChanged

	// OutcomePending means the node is waiting on an asynchronous
	// result and will be retried in a later cycle.
	OutcomePending
)

// join combines two outcomes: Pending dominates over everything,
// Changed dominates over Unchanged, and Unchanged is the identity.
func (o Outcome) join(other Outcome) Outcome {
	if o == OutcomePending || other == OutcomePending {
		return OutcomePending
	}
	if o == OutcomeChanged || other == OutcomeChanged {
		return OutcomeChanged
	}
	return OutcomeUnchanged
}

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeChanged:
		return "changed"
	case OutcomePending:
		return "pending"
	default:
		return "unknown"
	}
}
