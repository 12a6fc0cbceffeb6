package stoplight

import "context"

// ContextSignal is a Signal backed by a context.Context.
//
// This is the standard library approach. Each call to Stopped()
// performs a select on ctx.Done(), which has overhead from channel
// operations, but the underlying context can be handed to code that
// expects one. Cancelling the parent context also trips the signal.
type ContextSignal struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext creates a ContextSignal derived from a parent context.
func NewContext(parent context.Context) *ContextSignal {
	ctx, cancel := context.WithCancel(parent)
	return &ContextSignal{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Stopped returns true if a stop has been requested, or if the parent
// context has been cancelled.
//
// This performs a non-blocking select on ctx.Done().
func (c *ContextSignal) Stopped() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Stop requests a stop by cancelling the underlying context.
// Safe to call multiple times.
func (c *ContextSignal) Stop() {
	c.cancel()
}

// Context returns the underlying context.Context.
// Useful for passing to functions that expect a context.
func (c *ContextSignal) Context() context.Context {
	return c.ctx
}
