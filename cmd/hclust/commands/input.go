// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hclust/builder"
	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/matrix"
	"github.com/katalvlaran/hclust/similarity"
)

// Input kinds.
const (
	kindDistance   = "distance"
	kindSimilarity = "similarity"
)

var (
	errNoData      = errors.New("input: one of matrix or points is required")
	errBothData    = errors.New("input: matrix and points are mutually exclusive")
	errUnknownKind = errors.New("input: kind must be distance or similarity")
	errLabelCount  = errors.New("input: label count does not match item count")
)

// document is the on-disk input. Either Matrix or Points is set.
//
//	kind: distance          # or similarity; applies to matrix only
//	labels: [a, b, c]       # optional
//	matrix: [[0,1,4],[1,0,2],[4,2,0]]
//	points: [[0,0],[1,1]]   # alternative to matrix
//	metric: euclidean       # points only
//	linkage: average        # optional default for --linkage
type document struct {
	Kind    string      `yaml:"kind" json:"kind"`
	Labels  []string    `yaml:"labels" json:"labels"`
	Matrix  [][]float64 `yaml:"matrix" json:"matrix"`
	Points  [][]float64 `yaml:"points" json:"points"`
	Metric  string      `yaml:"metric" json:"metric"`
	Linkage string      `yaml:"linkage" json:"linkage"`
}

// problem is a document resolved into clustering inputs.
type problem struct {
	n        int
	fn       cluster.SimilarityFunc
	labels   []string
	distance bool // similarities are negated distances
	linkage  string
}

// readDocument loads path ("-" for stdin). ".json" files are decoded with
// go-json, everything else with yaml.v3.
func readDocument(path string, stdin io.Reader) (*document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return decodeDocument(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

func decodeDocument(data []byte, isJSON bool) (*document, error) {
	var doc document
	if isJSON {
		if err := gojson.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json input: %w", err)
		}
		return &doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml input: %w", err)
	}

	return &doc, nil
}

// resolve validates the document and builds the similarity function.
func (d *document) resolve() (*problem, error) {
	switch {
	case len(d.Matrix) > 0 && len(d.Points) > 0:
		return nil, errBothData
	case len(d.Matrix) == 0 && len(d.Points) == 0:
		return nil, errNoData
	}

	p := &problem{linkage: d.Linkage}
	if len(d.Points) > 0 {
		metric := d.Metric
		if metric == "" {
			metric = similarity.MetricEuclidean
		}
		m, err := similarity.ParseMetric(metric)
		if err != nil {
			return nil, err
		}
		if p.fn, err = similarity.FromPoints(d.Points, m); err != nil {
			return nil, err
		}
		p.n, p.distance = len(d.Points), true
	} else {
		t, err := matrix.NewFromRows(d.Matrix)
		if err != nil {
			return nil, fmt.Errorf("input matrix: %w", err)
		}
		switch strings.ToLower(d.Kind) {
		case kindDistance, "":
			p.fn, err = similarity.FromDistanceMatrix(t)
			p.distance = true
		case kindSimilarity:
			p.fn, err = similarity.FromMatrix(t)
		default:
			return nil, fmt.Errorf("%w: %q", errUnknownKind, d.Kind)
		}
		if err != nil {
			return nil, err
		}
		p.n = t.Rows()
	}

	switch len(d.Labels) {
	case 0:
		p.labels = make([]string, p.n)
		for i := range p.labels {
			p.labels[i] = builder.DefaultIDFn(i)
		}
	case p.n:
		p.labels = d.Labels
	default:
		return nil, fmt.Errorf("%w: %d labels for %d items", errLabelCount, len(d.Labels), p.n)
	}

	return p, nil
}
