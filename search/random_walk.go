package search

// randomWalkTraverser follows a single path, picking uniformly among the
// unvisited neighbors at every step. It never backtracks, so it can miss a
// reachable resource; callers wanting more confidence retry.
type randomWalkTraverser struct{}

func (randomWalkTraverser) traverse(r *run) Path {
	currentID := r.req.Requester
	path := Path{currentID}

	for {
		if cached, ok := r.tryCache(currentID, path); ok {
			return cached
		}

		remaining := r.remaining(path)
		if r.holds(currentID) {
			r.record(currentID, path, true, remaining)
			return path
		}
		r.markVisited(currentID)
		r.record(currentID, path, false, remaining)

		if remaining <= 0 {
			return nil
		}

		var candidates []string
		for _, neighbor := range r.neighbors(currentID) {
			if !r.isVisited(neighbor) {
				candidates = append(candidates, neighbor)
			}
		}
		if len(candidates) == 0 {
			return nil
		}

		currentID = candidates[r.engine.rng.Intn(len(candidates))]
		path = path.extend(currentID)
	}
}
