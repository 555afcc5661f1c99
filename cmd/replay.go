package main

import (
	"discovery/visualization"

	"github.com/spf13/cobra"
)

var replaySteps string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Print a recorded traversal step by step",
	RunE: func(cmd *cobra.Command, args []string) error {
		recorder, err := visualization.Load(replaySteps)
		if err != nil {
			return err
		}
		return recorder.Play(cmd.OutOrStdout())
	},
}

func init() {
	replayCmd.Flags().StringVar(&replaySteps, "steps", "", "steps file written by search --record")
	_ = replayCmd.MarkFlagRequired("steps")

	rootCmd.AddCommand(replayCmd)
}
