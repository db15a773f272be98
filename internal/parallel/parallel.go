// Package parallel provides the chunked parallel-map helpers used by the tensor kernels.
package parallel

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"k8s.io/klog/v2"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvParallel   = "NEURA_PARALLEL"
	EnvNumWorkers = "NEURA_NUM_WORKERS"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// ConfigFromEnv returns DefaultConfig adjusted by $NEURA_PARALLEL and $NEURA_NUM_WORKERS.
// Values that fail to parse are logged and ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v, found := os.LookupEnv(EnvParallel); found {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			klog.Warningf("ignoring $%s=%q: %v", EnvParallel, v, err)
		} else {
			cfg.Enabled = enabled
		}
	}
	if v, found := os.LookupEnv(EnvNumWorkers); found {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			klog.Warningf("ignoring $%s=%q: %v", EnvNumWorkers, v, err)
		case n < 1:
			klog.Warningf("ignoring $%s=%d: must be >= 1", EnvNumWorkers, n)
		default:
			cfg.NumWorkers = n
			if n == 1 {
				cfg.Enabled = false
			}
		}
	}
	klog.V(2).Infof("parallel config: enabled=%v workers=%d min_chunk=%d", cfg.Enabled, cfg.NumWorkers, cfg.MinChunkSize)
	return cfg
}

// chunkSize returns the span handed to each goroutine, or 0 if n should run sequentially.
func (cfg Config) chunkSize(n int) int {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize || n < 2 {
		return 0
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// ForRange executes f(start, end) over disjoint contiguous sub-ranges covering [0, n).
// Falls back to a single f(0, n) call if parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	chunk := cfg.chunkSize(n)
	if chunk == 0 || chunk >= n {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForBatch is For over a batch x rows grid, the iteration pattern of batched matmul.
func ForBatch(batch, rows int, f func(b, r int), cfg Config) {
	if rows <= 0 {
		return
	}
	For(batch*rows, func(k int) {
		f(k/rows, k%rows)
	}, cfg)
}
