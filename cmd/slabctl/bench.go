package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/slabkit/slabkit/slab"
	"github.com/spf13/cobra"
)

var (
	benchOps     int
	benchThreads int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchOps, "ops", 100_000, "allocate/free operations per thread")
	cmd.Flags().IntVar(&benchThreads, "threads", 1, "number of concurrent worker threads")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run a mixed alloc/free/resize workload",
		Long: `bench spins up one or more worker goroutines, each pinned to its own
OS thread and ThreadAllocator, and drives a mixed workload of random-sized
allocations, resizes, and frees across the size classes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	results := make(chan time.Duration, benchThreads)
	for i := 0; i < benchThreads; i++ {
		go func() {
			results <- benchWorker(benchOps)
		}()
	}

	var total time.Duration
	for i := 0; i < benchThreads; i++ {
		total += <-results
	}

	avg := total / time.Duration(benchThreads)
	fmt.Printf("threads=%d ops=%d avg-duration=%s ops/sec=%.0f\n",
		benchThreads, benchOps, avg, float64(benchOps)/avg.Seconds())
	return nil
}

func benchWorker(ops int) time.Duration {
	ta, err := slab.Init()
	if err != nil {
		printVerbose("worker init failed: %v\n", err)
		return 0
	}
	defer slab.Deinit()

	start := time.Now()
	live := make([]slab.Range, 0, 256)
	for i := 0; i < ops; i++ {
		switch {
		case len(live) == 0 || rand.Intn(3) != 0:
			r, err := ta.Alloc(1 + rand.Intn(slab.LargestAlloc))
			if err == nil {
				live = append(live, r)
			}
		default:
			idx := rand.Intn(len(live))
			if rand.Intn(2) == 0 {
				nr, err := ta.Resize(live[idx], 1+rand.Intn(slab.LargestAlloc))
				if err == nil {
					live[idx] = nr
				}
			} else {
				_ = ta.Free(live[idx])
				live[idx] = live[len(live)-1]
				live = live[:len(live)-1]
			}
		}
	}
	for _, r := range live {
		_ = ta.Free(r)
	}
	return time.Since(start)
}
