// Command poll benchmarks stop-signal polling.
//
// Usage:
//
//	go run ./cmd/poll -n 10000000
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/UlisseMini/stoplight"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	flag.Parse()

	fmt.Printf("Benchmarking stop-signal polling (%d iterations)\n", *iterations)
	fmt.Println("─────────────────────────────────────────────────")

	// Benchmark context-backed signal
	ctx := stoplight.NewContext(context.Background())
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		_ = ctx.Stopped()
	}
	ctxDur := time.Since(start)

	// Benchmark atomic-backed signal
	atomic := stoplight.NewAtomic()
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		_ = atomic.Stopped()
	}
	atomicDur := time.Since(start)

	// Benchmark batched polling over the atomic signal
	batched := stoplight.Batched(stoplight.NewAtomic(), 1000)
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		_ = batched.Stopped()
	}
	batchedDur := time.Since(start)

	// Results
	ctxPerOp := float64(ctxDur.Nanoseconds()) / float64(*iterations)
	atomicPerOp := float64(atomicDur.Nanoseconds()) / float64(*iterations)
	batchedPerOp := float64(batchedDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Context:  %v (%.2f ns/op)\n", ctxDur, ctxPerOp)
	fmt.Printf("  Atomic:   %v (%.2f ns/op)\n", atomicDur, atomicPerOp)
	fmt.Printf("  Batched:  %v (%.2f ns/op)\n", batchedDur, batchedPerOp)
	fmt.Printf("\n  Speedup:  %.2fx (atomic over context)\n", ctxPerOp/atomicPerOp)

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Context:  %.2f M polls/sec\n", 1000/ctxPerOp)
	fmt.Printf("  Atomic:   %.2f M polls/sec\n", 1000/atomicPerOp)
	fmt.Printf("  Batched:  %.2f M polls/sec\n", 1000/batchedPerOp)
}
