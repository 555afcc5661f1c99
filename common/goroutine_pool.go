package common

import (
	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"
)

type PoolConfig struct {
	MaxWorkers int
}

// NewPool creates a bounded goroutine pool. A non-positive MaxWorkers falls
// back to a single worker.
func NewPool(config PoolConfig) (*ants.Pool, error) {
	if config.MaxWorkers <= 0 {
		log.Warnf("NewPool: invalid MaxWorkers %d, using 1", config.MaxWorkers)
		config.MaxWorkers = 1
	}

	pool, err := ants.NewPool(config.MaxWorkers)
	if err != nil {
		log.Errorf("Failed to create ants goroutine_pool: %v", err)
		return nil, err
	}

	return pool, nil
}
