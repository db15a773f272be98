package tensor

import (
	"sync"

	"github.com/neura-ml/neura/internal/parallel"
)

var (
	parallelMu  sync.RWMutex
	parallelCfg = parallel.ConfigFromEnv()
)

// SetParallelConfig replaces the configuration used by the CPU kernels.
func SetParallelConfig(cfg parallel.Config) {
	parallelMu.Lock()
	defer parallelMu.Unlock()
	parallelCfg = cfg
}

// ParallelConfig returns the configuration used by the CPU kernels.
func ParallelConfig() parallel.Config {
	parallelMu.RLock()
	defer parallelMu.RUnlock()
	return parallelCfg
}
