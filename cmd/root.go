package main

import (
	"os"

	"discovery/config"

	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "discovery",
	Short: "Resource discovery over a peer-to-peer overlay",
	Long: `discovery loads an overlay topology and looks for resources held by its nodes
using breadth-first, depth-first, random-walk or flooding search, optionally
backed by a persistent route cache.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		initLogging(cfg.Log)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default $DISCOVERY_CONFIG or discovery_config.toml)")
}
