// Package stoplight provides stoppable tasks: a spawned goroutine paired
// with a shared stop signal that the task body polls cooperatively.
//
// The core pattern:
//
//	th := stoplight.Spawn(func(stop stoplight.Signal) int {
//		for !stop.Stopped() {
//			// do work
//		}
//		return 42
//	})
//
//	// Join requests a stop, waits for the body to return, and yields
//	// its return value.
//	v, err := th.Join()
//
// Cancellation is purely cooperative. The primitive never preempts or
// kills the worker goroutine; a body that never checks its signal runs
// until it returns on its own, and Join blocks for as long as that
// takes. There is no timeout variant.
//
// The signal is designed to be cheap enough to poll in a tight loop.
// Each Stopped() call on the default signal is a single atomic load
// (~1-2ns), versus ~15-25ns for a select on a context's Done channel.
// Both implementations are provided; see AtomicSignal and ContextSignal.
package stoplight

// Signal carries a stop request from the joining goroutine to a worker.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Stopped() concurrently
//   - Stop() may be called concurrently with Stopped()
//
// The signal is a one-way latch: once Stop() has been called, every
// subsequent Stopped() returns true. There is no way to re-arm it.
type Signal interface {
	// Stopped returns true if a stop has been requested.
	// Non-blocking; safe to call in a hot loop.
	Stopped() bool

	// Stop requests a stop. Safe to call multiple times.
	Stop()
}
