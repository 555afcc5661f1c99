package search

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// traverser walks the topology for one strategy. Implementations share the
// "attempt cache, check resource, expand frontier" skeleton through run.
type traverser interface {
	traverse(r *run) Path
}

type traverserRegistry struct {
	traversers map[Strategy]traverser
	mu         sync.RWMutex
}

var globalRegistry = &traverserRegistry{
	traversers: make(map[Strategy]traverser),
}

func (tr *traverserRegistry) register(strategy Strategy, t traverser) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.traversers[strategy]; exists {
		return fmt.Errorf("strategy '%s' is already registered", strategy)
	}
	tr.traversers[strategy] = t
	return nil
}

func (tr *traverserRegistry) get(strategy Strategy) (traverser, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	t, exists := tr.traversers[strategy]
	if !exists {
		return nil, fmt.Errorf("%w: strategy '%s' not found in registry", ErrInvalidArgument, strategy)
	}
	return t, nil
}

func init() {
	registrations := map[Strategy]traverser{
		BFS:        frontierTraverser{lifo: false},
		DFS:        frontierTraverser{lifo: true},
		RandomWalk: randomWalkTraverser{},
		Flood:      floodTraverser{},
	}
	for _, strategy := range Strategies() {
		if err := globalRegistry.register(strategy, registrations[strategy]); err != nil {
			log.Warnf("Failed to register %s traverser: %v", strategy, err)
		}
	}
}
