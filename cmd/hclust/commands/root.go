// SPDX-License-Identifier: MIT

// Package commands implements the hclust command tree.
package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	format  string
}

// NewRootCmd builds a fresh command tree. Each call returns independent flag
// state, so tests can execute several commands in one process.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "hclust",
		Short: "Greedy agglomerative hierarchical clustering",
		Long: `hclust - agglomerative hierarchical clustering over pairwise similarities.

Repeatedly merges the two most similar clusters and prints the merge list
(survivor, absorbed, similarity). Linkages: single, complete, average.

Examples:
  # Cluster a distance table, complete linkage, cut into 3 clusters
  hclust run -i table.yaml --linkage complete --clusters 3

  # Stop once the closest pair is farther than 2.5, JSON output
  hclust run -i points.json --threshold 2.5 --format json

  # Seeded demo data
  hclust demo --blobs 4 --per-blob 5 --seed 7`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every merge to stderr")
	root.PersistentFlags().StringVarP(&g.format, "format", "f", formatTable, "output format: table, yaml or json")

	root.AddCommand(newRunCmd(g), newDemoCmd(g))

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger writes human-readable records to w; debug level when verbose.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}
