package main

import (
	"fmt"

	"discovery/benchmark"
	"discovery/search"
	"discovery/topology_loader"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	topology   string
	out        string
	cacheDir   string
	workers    int
	ttl        int
	strategies []string
}

var benchOpts benchOptions

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run every (node, resource) query with each strategy and write a CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd, benchOpts)
	},
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	flags := cmd.Flags()
	if !flags.Changed("topology") {
		opts.topology = cfg.Topology.Path
	}
	if !flags.Changed("out") {
		opts.out = cfg.Benchmark.Output
	}
	if !flags.Changed("cache-dir") {
		opts.cacheDir = cfg.Benchmark.CacheDir
	}
	if !flags.Changed("workers") {
		opts.workers = cfg.Benchmark.Workers
	}
	if !flags.Changed("ttl") {
		opts.ttl = cfg.Benchmark.TTL
	}
	if opts.topology == "" {
		return fmt.Errorf("no topology given, use --topology or [topology] path")
	}

	var strategies []search.Strategy
	for _, name := range opts.strategies {
		strategy, err := search.ParseStrategy(name)
		if err != nil {
			return err
		}
		strategies = append(strategies, strategy)
	}

	topo, err := topology_loader.LoadFile(opts.topology)
	if err != nil {
		return err
	}

	runner := benchmark.NewRunner(topo, benchmark.Config{
		TTL:            opts.ttl,
		Workers:        opts.workers,
		RandomAttempts: cfg.Benchmark.RandomAttempts,
		CacheDir:       opts.cacheDir,
		Strategies:     strategies,
		Seed:           cfg.Search.Seed,
	})
	if err := runner.Run(); err != nil {
		return err
	}

	results := runner.Results()
	if err := benchmark.SaveCSV(opts.out, results); err != nil {
		return err
	}
	log.Infof("results saved to %s, rows: %d", opts.out, len(results))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-6s %8s %10s %10s\n", "method", "cache", "queries", "avg_steps", "avg_ms")
	for _, row := range benchmark.Summarize(results) {
		fmt.Fprintf(out, "%-8s %-6v %8d %10.2f %10.4f\n",
			row.SearchMethod, row.UseCache, row.Queries, row.MeanSteps, row.MeanTimeMs)
	}
	return nil
}

func init() {
	flags := benchCmd.Flags()
	flags.StringVarP(&benchOpts.topology, "topology", "t", "", "topology file (json, yaml or toml)")
	flags.StringVarP(&benchOpts.out, "out", "o", "", "CSV output file")
	flags.StringVar(&benchOpts.cacheDir, "cache-dir", "", "directory for cache_<strategy>.json files")
	flags.IntVarP(&benchOpts.workers, "workers", "w", 0, "concurrent queries in the uncached phase")
	flags.IntVar(&benchOpts.ttl, "ttl", 0, "maximum number of hops per query")
	flags.StringSliceVar(&benchOpts.strategies, "strategies", nil, "strategies to run (default all)")

	rootCmd.AddCommand(benchCmd)
}
