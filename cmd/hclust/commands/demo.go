// SPDX-License-Identifier: MIT

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hclust/builder"
	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/similarity"
)

var errBadSpread = errors.New("--spread must be > 0")

type demoFlags struct {
	blobs    int
	perBlob  int
	dim      int
	seed     int64
	spread   float64
	linkage  string
	clusters int
	parallel int
}

func newDemoCmd(g *globalFlags) *cobra.Command {
	f := &demoFlags{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Cluster seeded Gaussian blobs",
		Long: `Generate well-separated Gaussian blobs, cluster them by Euclidean
distance and cut the tree into as many clusters as there are blobs.
Points are labelled A, B, ..., Z, AA, ... in generation order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, g)
		},
	}

	cmd.Flags().IntVar(&f.blobs, "blobs", 3, "number of blobs")
	cmd.Flags().IntVar(&f.perBlob, "per-blob", 4, "points per blob")
	cmd.Flags().IntVar(&f.dim, "dim", 2, "dimensions")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&f.spread, "spread", 0.5, "per-axis standard deviation of a blob")
	cmd.Flags().StringVarP(&f.linkage, "linkage", "l", cluster.LinkageAverage, "linkage: single, complete or average")
	cmd.Flags().IntVarP(&f.clusters, "clusters", "k", 0, "flat cut size (default: number of blobs)")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 1, "shards for the best-pair scan and queue update")

	return cmd
}

func (f *demoFlags) run(cmd *cobra.Command, g *globalFlags) error {
	if err := checkFormat(g.format); err != nil {
		return err
	}
	if f.parallel < 1 {
		return errBadParallel
	}
	if f.spread <= 0 {
		return errBadSpread
	}

	data, err := builder.Blobs(f.blobs, f.perBlob, f.dim,
		builder.WithSeed(f.seed),
		builder.WithSpread(f.spread),
		builder.WithExcelColumnIDs(),
	)
	if err != nil {
		return err
	}
	fn, err := similarity.FromPoints(data.Points, similarity.Euclidean)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), g.verbose)
	log.Debug().Int("points", data.Len()).Int64("seed", f.seed).Msg("generated blobs")
	merges, err := cluster.Compute(data.Len(), fn,
		cluster.WithLinkageName(f.linkage),
		cluster.WithParallelism(f.parallel),
		cluster.WithLogger(log),
	)
	if err != nil {
		return err
	}

	k := f.clusters
	if k <= 0 {
		k = min(f.blobs, data.Len())
	}
	groups, err := cluster.Labels(data.Len(), merges, k)
	if err != nil {
		return err
	}

	p := &problem{n: data.Len(), labels: data.Labels, distance: true}
	l, _ := cluster.ParseLinkage(f.linkage) // validated by Compute
	r := newReport(l.Name(), p, merges)
	r.assign(data.Labels, groups, k)

	return writeReport(cmd.OutOrStdout(), g.format, r)
}
