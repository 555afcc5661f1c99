package search

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"discovery/common"
	"discovery/visualization"

	log "github.com/sirupsen/logrus"
)

// NoTTL marks a Request whose hop budget was not supplied.
const NoTTL = -1

// Topology is the read-only view of the overlay a search walks.
type Topology interface {
	Lookup(id string) (*common.Node, bool)
	Neighbors(id string) []string
}

// RouteCache is the subset of *route_cache.RouteCache used by the engine.
type RouteCache interface {
	Lookup(nodeID, resource string) ([]string, bool)
	Follow(cachedSuffix, currentPath []string, target string) ([]string, bool)
	Update(resource string, fullPath []string) error
}

// Request names who searches for what, with which strategy and hop budget.
type Request struct {
	Requester string
	Resource  string
	Strategy  Strategy
	// TTL is the hop budget; a returned path never has more hops.
	TTL      int
	UseCache bool
}

// Engine runs searches over one topology. It is not safe for concurrent
// use: the random source and the route cache are owned by a single caller.
type Engine struct {
	topology Topology
	cache    RouteCache
	sink     visualization.StepSink
	rng      *rand.Rand
}

// Option configures an Engine at construction.
type Option func(*Engine)

func WithRouteCache(cache RouteCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

func WithStepSink(sink visualization.StepSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithRand fixes the random source used by the random walk.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func NewEngine(topology Topology, opts ...Option) *Engine {
	engine := &Engine{
		topology: topology,
	}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.rng == nil {
		engine.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return engine
}

// Fetch is Search keyed by strategy name, as used by the CLI.
func (e *Engine) Fetch(requester, resource, method string, ttl int, useCache bool) (Path, error) {
	strategy, err := ParseStrategy(method)
	if err != nil {
		return nil, err
	}
	return e.Search(Request{
		Requester: requester,
		Resource:  resource,
		Strategy:  strategy,
		TTL:       ttl,
		UseCache:  useCache,
	})
}

// Search looks for req.Resource starting at req.Requester. A nil Path with
// a nil error means the resource was not found within the budget. When the
// route cache cannot be persisted the found path is returned together with
// the error.
func (e *Engine) Search(req Request) (Path, error) {
	if req.TTL < 0 {
		return nil, fmt.Errorf("%w: ttl must be specified for search", ErrInvalidArgument)
	}
	t, err := globalRegistry.get(req.Strategy)
	if err != nil {
		return nil, err
	}
	if _, exists := e.topology.Lookup(req.Requester); !exists {
		return nil, fmt.Errorf("%w: unknown requester %q", ErrInvalidArgument, req.Requester)
	}

	useCache := req.UseCache
	if useCache && e.cache == nil {
		log.Warnf("Search: cache requested but none configured, searching live")
		useCache = false
	}

	r := &run{
		engine:   e,
		req:      req,
		useCache: useCache,
		visited:  make(map[string]struct{}),
	}
	path := t.traverse(r)
	if path == nil {
		log.Debugf("Search: %s from %s for %s not found (ttl=%d)", req.Strategy, req.Requester, req.Resource, req.TTL)
		return nil, nil
	}
	log.Debugf("Search: %s from %s for %s found %v (cache hit=%v)", req.Strategy, req.Requester, req.Resource, path, r.cacheHit)

	if useCache && !r.cacheHit {
		if err := e.cache.Update(req.Resource, path); err != nil {
			return path, fmt.Errorf("update route cache: %w", err)
		}
	}
	return path, nil
}

// run holds the state of one search invocation.
type run struct {
	engine   *Engine
	req      Request
	useCache bool
	visited  map[string]struct{}
	cacheHit bool
}

func (r *run) holds(nodeID string) bool {
	node, exists := r.engine.topology.Lookup(nodeID)
	return exists && node.HasResource(r.req.Resource)
}

func (r *run) neighbors(nodeID string) []string {
	return r.engine.topology.Neighbors(nodeID)
}

func (r *run) isVisited(nodeID string) bool {
	_, ok := r.visited[nodeID]
	return ok
}

func (r *run) markVisited(nodeID string) {
	r.visited[nodeID] = struct{}{}
}

// remaining is the hop budget left once path has been walked.
func (r *run) remaining(path Path) int {
	return r.req.TTL - path.Hops()
}

// tryCache follows the route cached at nodeID when one exists, is still
// valid and fits in the hop budget.
func (r *run) tryCache(nodeID string, path Path) (Path, bool) {
	if !r.useCache {
		return nil, false
	}
	suffix, exists := r.engine.cache.Lookup(nodeID, r.req.Resource)
	if !exists {
		return nil, false
	}
	followed, ok := r.engine.cache.Follow(suffix, path, r.req.Resource)
	if !ok {
		return nil, false
	}
	result := Path(followed)
	if result.Hops() > r.req.TTL {
		log.Debugf("tryCache: cached route %v exceeds ttl %d", result, r.req.TTL)
		return nil, false
	}
	r.cacheHit = true
	r.record(nodeID, result, true, r.remaining(result))
	return result, true
}

func (r *run) record(currentID string, path Path, found bool, ttl int) {
	if r.engine.sink == nil {
		return
	}
	visited := make([]string, 0, len(r.visited))
	for id := range r.visited {
		visited = append(visited, id)
	}
	sort.Strings(visited)
	r.engine.sink.RecordStep(visualization.Step{
		RequesterID:   r.req.Requester,
		CurrentNodeID: currentID,
		VisitedNodes:  visited,
		Path:          append([]string(nil), path...),
		Found:         found,
		TTL:           ttl,
	})
}
