package stoplight

import (
	"context"
	"runtime/debug"
	"sync/atomic"
)

// Task is a handle to a stoppable worker.
//
// It pairs a goroutine running the task body with the Signal that body
// polls. The handle is single-use: the worker's result may be consumed
// by exactly one Join call.
type Task[T any] struct {
	sig    Signal
	result chan outcome[T]
	joined atomic.Bool
}

// outcome is what the worker wrapper delivers: the body's return value,
// or a *PanicError if the body panicked.
type outcome[T any] struct {
	value T
	err   error
}

// Spawn starts body in a new goroutine and returns a handle to it.
//
// The body receives a fresh AtomicSignal shared with the handle. It
// should poll Stopped() at whatever granularity suits its work and
// return when the signal trips (or earlier, for its own reasons).
//
// Spawn returns immediately; the body may not have run yet. Each call
// costs one goroutine, and nothing here bounds or pools them; callers
// that spawn in a loop are responsible for limiting concurrency.
func Spawn[T any](body func(Signal) T) *Task[T] {
	return spawn(NewAtomic(), body)
}

// SpawnContext is Spawn with a ContextSignal derived from parent, so
// cancelling the parent context also trips the body's signal. Use this
// when the body calls context-aware code; the signal's Context() is
// reachable via a type assertion on Task.Signal().
func SpawnContext[T any](parent context.Context, body func(Signal) T) *Task[T] {
	return spawn(NewContext(parent), body)
}

func spawn[T any](sig Signal, body func(Signal) T) *Task[T] {
	t := &Task[T]{
		sig:    sig,
		result: make(chan outcome[T], 1),
	}
	go t.run(body)
	return t
}

// run executes the body behind a panic guard. Exactly one outcome is
// sent on t.result: the buffered send never blocks, so the goroutine
// always exits even if the handle is abandoned without a Join.
func (t *Task[T]) run(body func(Signal) T) {
	defer func() {
		if r := recover(); r != nil {
			t.result <- outcome[T]{err: &PanicError{Value: r, Stack: debug.Stack()}}
		}
	}()
	t.result <- outcome[T]{value: body(t.sig)}
}

// Join requests a stop and then blocks until the worker finishes,
// returning the body's return value. If the body panicked, Join
// returns a *PanicError instead of crashing the joining goroutine.
//
// Join blocks for as long as the body keeps running. A body that never
// polls its signal and never returns makes Join block forever; that is
// the documented cost of cooperative cancellation, not an error this
// primitive detects.
//
// A Task may be joined once. A second Join returns ErrAlreadyJoined
// (and still leaves the stop request in place).
func (t *Task[T]) Join() (T, error) {
	if !t.joined.CompareAndSwap(false, true) {
		var zero T
		return zero, ErrAlreadyJoined
	}
	t.sig.Stop()
	out := <-t.result
	return out.value, out.err
}

// Stop requests a stop without waiting for the worker. Idempotent, and
// independent of Join: a later Join still consumes the result exactly
// once.
func (t *Task[T]) Stop() {
	t.sig.Stop()
}

// Stopped reports whether a stop has been requested on this task's
// signal. It says nothing about whether the worker has observed it.
func (t *Task[T]) Stopped() bool {
	return t.sig.Stopped()
}

// Signal returns the signal shared with the worker body, for callers
// that want to hand it to other observers.
func (t *Task[T]) Signal() Signal {
	return t.sig
}
