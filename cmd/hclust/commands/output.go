// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hclust/cluster"
)

// Output formats.
const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

var errUnknownFormat = errors.New("output: format must be table, yaml or json")

func checkFormat(format string) error {
	switch format {
	case formatTable, formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

type mergeRow struct {
	Step       int      `yaml:"step" json:"step"`
	Survivor   string   `yaml:"survivor" json:"survivor"`
	Absorbed   string   `yaml:"absorbed" json:"absorbed"`
	Similarity float64  `yaml:"similarity" json:"similarity"`
	Distance   *float64 `yaml:"distance,omitempty" json:"distance,omitempty"`
	Size       int      `yaml:"size" json:"size"`
}

type assignment struct {
	Label   string `yaml:"label" json:"label"`
	Cluster int    `yaml:"cluster" json:"cluster"`
}

// report is what every command prints.
type report struct {
	Linkage     string       `yaml:"linkage" json:"linkage"`
	Items       int          `yaml:"items" json:"items"`
	Stopped     bool         `yaml:"stopped" json:"stopped"`
	Merges      []mergeRow   `yaml:"merges" json:"merges"`
	Clusters    int          `yaml:"clusters,omitempty" json:"clusters,omitempty"`
	Assignments []assignment `yaml:"assignments,omitempty" json:"assignments,omitempty"`
}

// newReport renders merges with item labels. For distance inputs the
// distance (negated similarity) is reported alongside.
func newReport(linkage string, p *problem, merges []cluster.Merge) *report {
	r := &report{
		Linkage: linkage,
		Items:   p.n,
		Stopped: len(merges) < p.n-1,
		Merges:  make([]mergeRow, len(merges)),
	}
	for i, m := range merges {
		row := mergeRow{
			Step:       i + 1,
			Survivor:   p.labels[m.Survivor],
			Absorbed:   p.labels[m.Absorbed],
			Similarity: m.Similarity,
			Size:       m.Size,
		}
		if p.distance {
			d := -m.Similarity
			row.Distance = &d
		}
		r.Merges[i] = row
	}

	return r
}

func (r *report) assign(labels []string, groups []int, k int) {
	r.Clusters = k
	r.Assignments = make([]assignment, len(groups))
	for i, g := range groups {
		r.Assignments[i] = assignment{Label: labels[i], Cluster: g}
	}
}

func writeReport(w io.Writer, format string, r *report) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		data, err := gojson.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatTable:
		return writeTable(w, r)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func writeTable(w io.Writer, r *report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSURVIVOR\tABSORBED\tSIMILARITY\tSIZE")
	for _, m := range r.Merges {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%d\n", m.Step, m.Survivor, m.Absorbed, m.Similarity, m.Size)
	}
	if len(r.Assignments) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "LABEL\tCLUSTER")
		for _, a := range r.Assignments {
			fmt.Fprintf(tw, "%s\t%d\n", a.Label, a.Cluster)
		}
	}

	return tw.Flush()
}
