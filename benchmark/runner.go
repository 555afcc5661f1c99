package benchmark

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"discovery/common"
	"discovery/route_cache"
	"discovery/search"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	TTL     int
	Workers int
	// RandomAttempts bounds how often a failed random walk is retried.
	RandomAttempts int
	// CacheDir receives one cache_<strategy>.json per strategy.
	CacheDir   string
	Strategies []search.Strategy
	Seed       int64
}

// Runner queries every (node, resource) pair of a topology with each
// strategy, first without and then with a route cache.
type Runner struct {
	topology *common.Topology
	config   Config
	results  []Result
}

type query struct {
	index    int
	nodeID   string
	resource string
}

func NewRunner(topology *common.Topology, config Config) *Runner {
	if len(config.Strategies) == 0 {
		config.Strategies = search.Strategies()
	}
	if config.RandomAttempts <= 0 {
		config.RandomAttempts = 1
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return &Runner{
		topology: topology,
		config:   config,
	}
}

func (r *Runner) Results() []Result {
	results := make([]Result, len(r.results))
	copy(results, r.results)
	return results
}

func (r *Runner) queries() []query {
	nodes := r.topology.NodeIDs()
	resources := r.topology.Resources()
	queries := make([]query, 0, len(nodes)*len(resources))
	for _, nodeID := range nodes {
		for _, resource := range resources {
			queries = append(queries, query{index: len(queries), nodeID: nodeID, resource: resource})
		}
	}
	return queries
}

func (r *Runner) Run() error {
	queries := r.queries()
	log.Infof("benchmark: %d nodes, %d queries per phase, strategies %v",
		r.topology.NodeCount(), len(queries), r.config.Strategies)

	if info, err := GetMemoryInfo(); err != nil {
		log.Warnf("benchmark: memory snapshot failed: %v", err)
	} else {
		log.Infof("benchmark: before run, %s", info)
	}

	for _, strategy := range r.config.Strategies {
		log.Infof("benchmark: >>> processing %s", strategy)

		baseline, err := r.runWithoutCache(strategy, queries)
		if err != nil {
			return err
		}
		r.results = append(r.results, baseline...)

		cached, err := r.runWithCache(strategy, queries)
		if err != nil {
			return err
		}
		r.results = append(r.results, cached...)
	}

	if info, err := GetMemoryInfo(); err != nil {
		log.Warnf("benchmark: memory snapshot failed: %v", err)
	} else {
		log.Infof("benchmark: after run, %s", info)
	}
	log.Infof("benchmark complete: %d successful queries", len(r.results))
	return nil
}

// runWithoutCache fans the queries out over a goroutine pool. Each task owns
// its engine and random source.
func (r *Runner) runWithoutCache(strategy search.Strategy, queries []query) ([]Result, error) {
	log.Infof("benchmark: phase 1, %s without cache", strategy)

	pool, err := common.NewPool(common.PoolConfig{MaxWorkers: r.config.Workers})
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	slots := make([]*Result, len(queries))
	var wg sync.WaitGroup
	for _, q := range queries {
		q := q
		wg.Add(1)
		task := func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(r.config.Seed + int64(q.index)))
			engine := search.NewEngine(r.topology, search.WithRand(rng))
			slots[q.index] = r.runQuery(engine, strategy, q, false)
		}
		if err := pool.Submit(task); err != nil {
			log.Errorf("Submit failed, err=%v", err)
			wg.Done()
		}
	}
	wg.Wait()

	results := make([]Result, 0, len(queries))
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}
	return results, nil
}

// runWithCache runs the queries in order against a fresh deferred-write
// cache so that early queries populate it for later ones.
func (r *Runner) runWithCache(strategy search.Strategy, queries []query) ([]Result, error) {
	log.Infof("benchmark: phase 2, %s with cache", strategy)

	path := filepath.Join(r.config.CacheDir, fmt.Sprintf("cache_%s.json", strategy))
	fm, err := route_cache.NewFileManager(path)
	if err != nil {
		return nil, err
	}
	cache := route_cache.New(nil, fm, r.topology, true)
	rng := rand.New(rand.NewSource(r.config.Seed))
	engine := search.NewEngine(r.topology, search.WithRouteCache(cache), search.WithRand(rng))

	results := make([]Result, 0, len(queries))
	for i, q := range queries {
		if (i+1)%50 == 0 {
			log.Debugf("benchmark: progress %d/%d", i+1, len(queries))
		}
		if result := r.runQuery(engine, strategy, q, true); result != nil {
			results = append(results, *result)
		}
	}

	if err := cache.Flush(); err != nil {
		return nil, fmt.Errorf("flush %s: %w", path, err)
	}
	log.Infof("benchmark: cache file saved to %s (%d nodes)", path, cache.Len())
	return results, nil
}

func (r *Runner) runQuery(engine *search.Engine, strategy search.Strategy, q query, useCache bool) *Result {
	attempts := 1
	if strategy == search.RandomWalk {
		attempts = r.config.RandomAttempts
	}

	req := search.Request{
		Requester: q.nodeID,
		Resource:  q.resource,
		Strategy:  strategy,
		TTL:       r.config.TTL,
		UseCache:  useCache,
	}

	start := time.Now()
	var path search.Path
	for attempt := 0; attempt < attempts && path == nil; attempt++ {
		var err error
		path, err = engine.Search(req)
		if err != nil {
			log.Warnf("benchmark: %s %s -> %s: %v", strategy, q.nodeID, q.resource, err)
			if path == nil {
				return nil
			}
		}
	}
	elapsed := time.Since(start)

	if path == nil {
		return nil
	}
	return &Result{
		NodeID:       q.nodeID,
		Resource:     q.resource,
		SearchMethod: strategy.String(),
		UseCache:     useCache,
		Steps:        path.Hops(),
		TimeMs:       float64(elapsed.Microseconds()) / 1000,
	}
}
