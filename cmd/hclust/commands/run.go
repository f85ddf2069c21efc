// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hclust/cluster"
)

var errBadParallel = errors.New("--parallel must be >= 1")

type runFlags struct {
	input     string
	linkage   string
	threshold float64
	clusters  int
	parallel  int
	timeout   time.Duration
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a table or point set read from a YAML/JSON file",
		Long: `Cluster the items described by an input document.

The document holds either a square matrix (kind: distance or similarity) or
a list of points with a metric: euclidean (alias l2), sqeuclidean,
manhattan (alias l1), cosine or dtw. Under dtw the points are time series
and may differ in length.
Use "-" to read from stdin.

--threshold stops once the best similarity drops below the value; for
distance and point inputs it is a distance, and clustering stops once the
closest pair is farther apart than the value.`,
		Example: `  hclust run -i table.yaml --linkage complete --clusters 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, g)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input document (YAML or .json; - for stdin)")
	cmd.Flags().StringVarP(&f.linkage, "linkage", "l", cluster.LinkageSingle, "linkage: single, complete or average")
	cmd.Flags().Float64VarP(&f.threshold, "threshold", "t", 0, "stop threshold (similarity, or distance for distance inputs)")
	cmd.Flags().IntVarP(&f.clusters, "clusters", "k", 0, "also print a flat cut into this many clusters")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 1, "shards for the best-pair scan and queue update")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the run after this long (0 = no limit)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (f *runFlags) run(cmd *cobra.Command, g *globalFlags) error {
	if err := checkFormat(g.format); err != nil {
		return err
	}
	if f.parallel < 1 {
		return errBadParallel
	}

	doc, err := readDocument(f.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	p, err := doc.resolve()
	if err != nil {
		return err
	}

	name := f.linkage
	if !cmd.Flags().Changed("linkage") && p.linkage != "" {
		name = p.linkage
	}
	linkage, err := cluster.ParseLinkage(name)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), g.verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	opts := []cluster.Option{
		cluster.WithLinkage(linkage),
		cluster.WithParallelism(f.parallel),
		cluster.WithLogger(log),
		cluster.WithContext(ctx),
	}
	useThreshold := cmd.Flags().Changed("threshold")
	threshold := f.threshold
	if p.distance {
		threshold = -threshold
	}
	if useThreshold {
		opts = append(opts, cluster.WithStop(cluster.Below(threshold)))
	}

	log.Debug().Int("items", p.n).Str("linkage", linkage.Name()).Str("input", f.input).Msg("clustering")
	merges, err := cluster.Compute(p.n, p.fn, opts...)
	if err != nil {
		return err
	}

	r := newReport(linkage.Name(), p, merges)
	switch {
	case f.clusters > 0:
		groups, err := cluster.Labels(p.n, merges, f.clusters)
		if err != nil {
			return fmt.Errorf("--clusters %d: %w", f.clusters, err)
		}
		r.assign(p.labels, groups, f.clusters)
	case useThreshold:
		groups, k, err := cluster.LabelsAt(p.n, merges, threshold)
		if err != nil {
			return err
		}
		r.assign(p.labels, groups, k)
	}

	return writeReport(cmd.OutOrStdout(), g.format, r)
}
