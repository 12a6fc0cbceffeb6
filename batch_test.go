package stoplight_test

import (
	"testing"

	"github.com/UlisseMini/stoplight"
)

func TestBatchedSignal(t *testing.T) {
	inner := stoplight.NewAtomic()
	b := stoplight.Batched(inner, 10)

	if b.Stopped() {
		t.Error("expected Stopped() = false before Stop()")
	}

	b.Stop()

	if !inner.Stopped() {
		t.Error("Stop() did not forward to the underlying signal")
	}

	// The stop must be observed within one full batch of calls.
	seen := false
	for i := 0; i < 10; i++ {
		if b.Stopped() {
			seen = true
			break
		}
	}
	if !seen {
		t.Errorf("stop not observed within %d calls", b.Every())
	}

	// Latched: every later read stays true.
	for i := 0; i < 25; i++ {
		if !b.Stopped() {
			t.Fatal("Stopped() went back to false after observing a stop")
		}
	}
}

func TestBatchedSignal_SkipsChecks(t *testing.T) {
	inner := stoplight.NewAtomic()
	b := stoplight.Batched(inner, 100)

	inner.Stop()

	// The first every-1 calls must not consult the flag.
	for i := 0; i < 99; i++ {
		if b.Stopped() {
			t.Fatalf("call %d consulted the underlying signal early", i)
		}
	}
	if !b.Stopped() {
		t.Error("call 100 should have observed the stop")
	}
}

func TestBatchedSignal_EveryFloor(t *testing.T) {
	b := stoplight.Batched(stoplight.NewAtomic(), 0)
	if b.Every() != 1 {
		t.Errorf("Every() = %d, want 1", b.Every())
	}

	b.Stop()
	if !b.Stopped() {
		t.Error("every=1 should observe a stop on the next call")
	}
}

// TestBatchedSignal_InTask runs a batched poller inside a spawned task.
func TestBatchedSignal_InTask(t *testing.T) {
	th := stoplight.Spawn(func(stop stoplight.Signal) int {
		b := stoplight.Batched(stop, 1000)
		n := 0
		for !b.Stopped() {
			n++
		}
		return n
	})

	v, err := th.Join()
	if err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	if v < 0 {
		t.Errorf("iteration count = %d, want >= 0", v)
	}
}
