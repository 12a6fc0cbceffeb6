package stoplight

import (
	"errors"
	"fmt"
)

// ErrAlreadyJoined is returned by Join when the task's result has
// already been consumed by an earlier Join call.
var ErrAlreadyJoined = errors.New("stoplight: task already joined")

// PanicError is returned by Join when the task body panicked instead
// of returning. It carries the recovered panic value and the worker
// goroutine's stack at the point of the panic.
type PanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the worker's stack trace, captured by debug.Stack()
	// inside the recovering deferred call.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("stoplight: task panicked: %v", e.Value)
}

// Unwrap returns the panic value if it was itself an error, so
// errors.Is/As can see through a panic(err) in the body.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
