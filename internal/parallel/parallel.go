// Package parallel runs independent per-neuron work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
//
// The zero value runs everything sequentially.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines (default: runtime.NumCPU()).
	MinChunkSize int  // Minimum items per goroutine to avoid overhead (default: 1).
}

// DefaultConfig returns sensible defaults based on CPU count.
//
// Per-neuron work is tiny, so chunks are kept large enough that small layers
// still run sequentially.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For executes f(i) for i in [0, n) and returns once every call has finished.
//
// Falls back to sequential execution if parallelism is disabled or n is
// smaller than one chunk. Calls for distinct i must not share mutable state.
func For(n int, f func(i int), cfg Config) {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	if cfg.MinChunkSize <= 0 {
		cfg.MinChunkSize = 1
	}

	if !cfg.Enabled || cfg.NumWorkers == 1 || n < 2*cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
