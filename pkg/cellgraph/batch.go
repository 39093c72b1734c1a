package cellgraph

// StartBatching opens a batch scope. While any scope is open, writes
// and fires are queued instead of starting propagation cycles. Scopes
// nest; only closing the outermost one flushes.
func (cx *Context) StartBatching() {
	cx.batchDepth++
}

// EndBatching closes one batch scope. Closing the outermost scope
// flushes the queued ids as the trigger set of a single cycle.
// Calling it with no scope open is a no-op.
func (cx *Context) EndBatching() {
	if cx.batchDepth == 0 {
		return
	}
	cx.batchDepth--
	if cx.batchDepth == 0 && len(cx.queue) > 0 {
		cx.startCycle(nil)
	}
}

// Batch runs fn inside a batch scope. The scope is released via defer,
// so a panic inside fn cannot leave the batch counter incremented.
//
//	cx.Batch(func() {
//	    first.Set("John")
//	    last.Set("Doe")
//	})
//	// One propagation cycle with both writes.
func (cx *Context) Batch(fn func()) {
	cx.StartBatching()
	defer cx.EndBatching()
	fn()
}

// Batching reports whether a batch scope is currently open.
func (cx *Context) Batching() bool {
	return cx.batchDepth > 0
}
