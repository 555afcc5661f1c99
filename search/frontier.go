package search

import (
	log "github.com/sirupsen/logrus"
)

// compactThreshold is how many consumed BFS entries may pile up at the head
// of the queue before the live tail is copied down.
const compactThreshold = 64

type frontierEntry struct {
	nodeID string
	path   Path
}

// frontierTraverser implements both BFS (FIFO) and DFS (LIFO). Neighbors are
// pushed in topology order, so BFS explores the first-listed neighbor first
// while DFS pops, and therefore explores, the last-listed neighbor first.
type frontierTraverser struct {
	lifo bool
}

func (ft frontierTraverser) traverse(r *run) Path {
	requester := r.req.Requester
	frontier := []frontierEntry{{nodeID: requester, path: Path{requester}}}
	head := 0

	for head < len(frontier) {
		idx := head
		if ft.lifo {
			idx = len(frontier) - 1
		}
		current := frontier[idx]

		if cached, ok := r.tryCache(current.nodeID, current.path); ok {
			return cached
		}

		if ft.lifo {
			frontier = frontier[:idx]
		} else {
			frontier[head] = frontierEntry{}
			head++
			frontier, head = compact(frontier, head)
		}

		remaining := r.remaining(current.path)
		if r.holds(current.nodeID) {
			r.record(current.nodeID, current.path, true, remaining)
			return current.path
		}

		if r.isVisited(current.nodeID) {
			continue
		}
		r.markVisited(current.nodeID)

		if remaining > 0 {
			for _, neighbor := range r.neighbors(current.nodeID) {
				if r.isVisited(neighbor) {
					continue
				}
				frontier = append(frontier, frontierEntry{
					nodeID: neighbor,
					path:   current.path.extend(neighbor),
				})
			}
		} else {
			log.Debugf("frontier: ttl exhausted at %s, path %v", current.nodeID, current.path)
		}
		r.record(current.nodeID, current.path, false, remaining)
	}
	return nil
}

// compact drops consumed entries once they make up at least half the queue.
func compact(frontier []frontierEntry, head int) ([]frontierEntry, int) {
	if head < compactThreshold || head*2 < len(frontier) {
		return frontier, head
	}
	n := copy(frontier, frontier[head:])
	for i := n; i < len(frontier); i++ {
		frontier[i] = frontierEntry{}
	}
	return frontier[:n], 0
}
