// Command spawn measures the stoppable-task lifecycle.
//
// Usage:
//
//	go run ./cmd/spawn -workers 64
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/UlisseMini/stoplight"
)

func main() {
	workers := flag.Int("workers", 64, "number of tasks to spawn")
	flag.Parse()

	fmt.Printf("Spawning %d busy-polling tasks\n", *workers)
	fmt.Println("─────────────────────────────────────────────────")

	// Spawn: each worker spins on its signal and returns its index.
	start := time.Now()
	tasks := make([]*stoplight.Task[int], *workers)
	for i := 0; i < *workers; i++ {
		tasks[i] = stoplight.Spawn(func(stop stoplight.Signal) int {
			for !stop.Stopped() {
			}
			return i
		})
	}
	spawnDur := time.Since(start)

	// Join all: each Join requests a stop, then collects the result.
	start = time.Now()
	seen := make([]bool, *workers)
	for i, th := range tasks {
		v, err := th.Join()
		if err != nil {
			fmt.Printf("task %d: join failed: %v\n", i, err)
			os.Exit(1)
		}
		if v < 0 || v >= *workers || seen[v] {
			fmt.Printf("task %d: bad result %d (duplicate or out of range)\n", i, v)
			os.Exit(1)
		}
		seen[v] = true
	}
	joinDur := time.Since(start)

	spawnPerOp := float64(spawnDur.Nanoseconds()) / float64(*workers)
	joinPerOp := float64(joinDur.Nanoseconds()) / float64(*workers)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Spawn:  %v (%.2f ns/task)\n", spawnDur, spawnPerOp)
	fmt.Printf("  Join:   %v (%.2f ns/task)\n", joinDur, joinPerOp)
	fmt.Printf("\nAll %d results accounted for, no duplicates\n", *workers)
}
