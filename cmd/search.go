package main

import (
	"fmt"
	"math/rand"
	"strings"

	"discovery/route_cache"
	"discovery/search"
	"discovery/topology_loader"
	"discovery/visualization"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	topology  string
	requester string
	resource  string
	strategy  string
	ttl       int
	cache     string
	useCache  bool
	deferred  bool
	record    string
}

var searchOpts searchOptions

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the overlay for a resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, searchOpts)
	},
}

func runSearch(cmd *cobra.Command, opts searchOptions) error {
	flags := cmd.Flags()
	if !flags.Changed("topology") {
		opts.topology = cfg.Topology.Path
	}
	if !flags.Changed("strategy") {
		opts.strategy = cfg.Search.Strategy
	}
	if !flags.Changed("ttl") && cfg.Search.TTL != nil {
		opts.ttl = *cfg.Search.TTL
	}
	if !flags.Changed("cache") {
		opts.cache = cfg.Cache.Path
	} else {
		opts.useCache = true
	}
	if !flags.Changed("use-cache") && !flags.Changed("cache") {
		opts.useCache = cfg.Search.UseCache
	}
	if !flags.Changed("deferred") {
		opts.deferred = cfg.Cache.DeferredWrite
	}
	if opts.topology == "" {
		return fmt.Errorf("no topology given, use --topology or [topology] path")
	}

	topo, err := topology_loader.LoadFile(opts.topology)
	if err != nil {
		return err
	}

	var engineOpts []search.Option
	var cache *route_cache.RouteCache
	if opts.useCache {
		if opts.cache == "" {
			return fmt.Errorf("%w: cache requested without a cache path", search.ErrInvalidArgument)
		}
		cache, err = route_cache.Open(route_cache.Config{Path: opts.cache, DeferredWrite: opts.deferred}, topo)
		if err != nil {
			return err
		}
		engineOpts = append(engineOpts, search.WithRouteCache(cache))
	}
	var recorder *visualization.Recorder
	if opts.record != "" {
		recorder = visualization.NewRecorder()
		engineOpts = append(engineOpts, search.WithStepSink(recorder))
	}
	if cfg.Search.Seed != 0 {
		engineOpts = append(engineOpts, search.WithRand(rand.New(rand.NewSource(cfg.Search.Seed))))
	}

	engine := search.NewEngine(topo, engineOpts...)
	path, searchErr := engine.Fetch(opts.requester, opts.resource, opts.strategy, opts.ttl, opts.useCache)

	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Errorf("closing route cache failed, err:%v", err)
		}
	}
	if recorder != nil {
		if err := recorder.Save(opts.record); err != nil {
			log.Errorf("saving steps failed, err:%v", err)
		}
	}

	if path != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "found %s at %s in %d hops: %s\n",
			opts.resource, path.Last(), path.Hops(), strings.Join(path, " -> "))
	}
	if searchErr != nil {
		return searchErr
	}
	if path == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s not found from %s within ttl %d\n", opts.resource, opts.requester, opts.ttl)
	}
	return nil
}

func init() {
	flags := searchCmd.Flags()
	flags.StringVarP(&searchOpts.topology, "topology", "t", "", "topology file (json, yaml or toml)")
	flags.StringVarP(&searchOpts.requester, "requester", "r", "", "node starting the search")
	flags.StringVar(&searchOpts.resource, "resource", "", "resource to look for")
	flags.StringVarP(&searchOpts.strategy, "strategy", "s", "bfs", "bfs, dfs, random or flood")
	flags.IntVar(&searchOpts.ttl, "ttl", search.NoTTL, "maximum number of hops")
	flags.StringVar(&searchOpts.cache, "cache", "", "route cache file; implies --use-cache")
	flags.BoolVar(&searchOpts.useCache, "use-cache", false, "consult and update the route cache")
	flags.BoolVar(&searchOpts.deferred, "deferred", false, "write the route cache only on exit")
	flags.StringVar(&searchOpts.record, "record", "", "save traversal steps to this file for replay")
	_ = searchCmd.MarkFlagRequired("requester")
	_ = searchCmd.MarkFlagRequired("resource")

	rootCmd.AddCommand(searchCmd)
}
