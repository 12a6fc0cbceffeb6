package stoplight

// BatchedSignal consults the underlying signal only every N calls to
// Stopped().
//
// This amortizes the cost of stop checks across multiple loop
// iterations. Even an atomic load has a cost in a loop running tens of
// millions of iterations per second, and a batched check trades stop
// latency (up to N iterations) for near-zero per-iteration overhead.
//
// Example: with every=1000, the flag is loaded once per 1000 calls;
// the other 999 calls are a counter increment and a branch.
//
// Unlike the signals it wraps, a BatchedSignal's Stopped() may be
// called from only ONE goroutine (the polling worker). Stop() forwards
// to the underlying signal and is safe from any goroutine.
type BatchedSignal struct {
	inner Signal
	every int
	count int
	seen  bool
}

// Batched wraps s so that its flag is checked only every N calls.
//
// Parameters:
//   - s: the signal to wrap (shared with whoever calls Stop)
//   - every: check the underlying signal only every N calls to Stopped()
func Batched(s Signal, every int) *BatchedSignal {
	if every < 1 {
		every = 1
	}
	return &BatchedSignal{
		inner: s,
		every: every,
	}
}

// Stopped returns true if a stop request has been observed.
//
// The underlying signal is only loaded every N calls (as specified by
// 'every'). Once a stop has been observed, Stopped() latches true and
// stops consulting the underlying signal.
func (b *BatchedSignal) Stopped() bool {
	if b.seen {
		return true
	}
	b.count++
	if b.count%b.every != 0 {
		return false
	}
	if b.inner.Stopped() {
		b.seen = true
	}
	return b.seen
}

// Stop requests a stop on the underlying signal immediately; batching
// applies only to reads.
func (b *BatchedSignal) Stop() {
	b.inner.Stop()
}

// Every returns the batch size.
func (b *BatchedSignal) Every() int {
	return b.every
}
