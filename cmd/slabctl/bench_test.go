package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchWorkerCompletes(t *testing.T) {
	d := benchWorker(2000)
	require.Greater(t, d.Nanoseconds(), int64(0))
}

func TestRunStatsNoError(t *testing.T) {
	jsonOut = false
	require.NoError(t, runStats())
}
