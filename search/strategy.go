package search

import (
	"fmt"
	"strings"
)

// Strategy selects the traversal used by a search.
type Strategy int

const (
	BFS Strategy = iota
	DFS
	RandomWalk
	Flood
)

var strategyNames = map[Strategy]string{
	BFS:        "bfs",
	DFS:        "dfs",
	RandomWalk: "random",
	Flood:      "flood",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps "bfs", "dfs", "random" and "flood" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for strategy, strategyName := range strategyNames {
		if strategyName == normalized {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown search method %q", ErrInvalidArgument, name)
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, RandomWalk, Flood}
}
