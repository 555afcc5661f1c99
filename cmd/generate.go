package main

import (
	"fmt"

	"discovery/topology_loader"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	nodes     int
	resources int
	out       string
}

var generateOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a hexagonal grid topology for benchmarking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, generateOpts)
	},
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	if opts.nodes <= 0 {
		return fmt.Errorf("--nodes must be positive, got %d", opts.nodes)
	}
	schema := topology_loader.GenerateHexagonal(opts.nodes, opts.resources)
	if err := topology_loader.SaveFile(opts.out, schema); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "nodes: %d\n", schema.NumNodes)
	fmt.Fprintf(out, "resources: %d\n", opts.resources)
	fmt.Fprintf(out, "edges: %d\n", len(schema.Edges))
	fmt.Fprintf(out, "average degree: %.2f\n", 2*float64(len(schema.Edges))/float64(schema.NumNodes))
	fmt.Fprintf(out, "saved to: %s\n", opts.out)
	return nil
}

func init() {
	flags := generateCmd.Flags()
	flags.IntVarP(&generateOpts.nodes, "nodes", "n", 100, "number of nodes")
	flags.IntVarP(&generateOpts.resources, "resources", "r", 200, "number of resources dealt over the nodes")
	flags.StringVarP(&generateOpts.out, "out", "o", "hexagonal_network.json", "output file (json, yaml or toml)")

	rootCmd.AddCommand(generateCmd)
}
