package kmeans

import (
	"context"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

const algorithm = "kmeans"

// Params collects the arguments for one kmeans invocation. Input and
// Clusters are required; optionals are forwarded only when set, and their
// values (including Algorithm, which names a native clustering variant)
// are not interpreted on the Go side.
type Params struct {
	// Input holds one observation per row.
	Input mat.Matrix

	// Clusters is the number of clusters to find.
	Clusters int

	MaxIterations      *int
	Percentage         *float64
	Algorithm          *string
	AllowEmptyClusters *bool
	LabelsOnly         *bool
	Seed               *int

	// InitialCentroids seeds the clustering, one centroid per row.
	InitialCentroids mat.Matrix
}

func (p *Params) table() (*param.Table, error) {
	if p.Input == nil {
		return nil, errors.New("kmeans: Input is required")
	}
	if p.Clusters <= 0 {
		return nil, errors.New("kmeans: Clusters must be positive")
	}

	t := param.New()
	t.SetMatrix("input", p.Input)
	t.SetInt("clusters", p.Clusters)
	if p.MaxIterations != nil {
		t.SetInt("max_iterations", *p.MaxIterations)
	}
	if p.Percentage != nil {
		t.SetDouble("percentage", *p.Percentage)
	}
	if p.Algorithm != nil {
		t.SetString("algorithm", *p.Algorithm)
	}
	if p.AllowEmptyClusters != nil {
		t.SetBool("allow_empty_clusters", *p.AllowEmptyClusters)
	}
	if p.LabelsOnly != nil {
		t.SetBool("labels_only", *p.LabelsOnly)
	}
	if p.Seed != nil {
		t.SetInt("seed", *p.Seed)
	}
	if p.InitialCentroids != nil {
		t.SetMatrix("initial_centroids", p.InitialCentroids)
	}
	return t, nil
}

// Result is the fixed output tuple. Centroids is nil when LabelsOnly was
// set.
type Result struct {
	// Assignments holds one cluster index per input observation.
	Assignments []int

	// Centroids holds one centroid per row.
	Centroids *mat.Dense
}

// Run invokes the native kmeans routine once, synchronously.
func Run(ctx context.Context, p *Params) (*Result, error) {
	if p == nil {
		return nil, errors.New("kmeans: nil params")
	}
	tbl, err := p.table()
	if err != nil {
		return nil, err
	}

	labelsOnly := p.LabelsOnly != nil && *p.LabelsOnly

	res := &Result{}
	err = lattice.Invoke(ctx, algorithm, tbl, func(h backend.Params) error {
		assign, err := backend.GetLabels(h, "assignments")
		if err != nil {
			return err
		}
		res.Assignments = make([]int, len(assign))
		for i, v := range assign {
			res.Assignments[i] = int(v)
		}

		if labelsOnly {
			return nil
		}
		cents, rows, cols, err := backend.GetMatrix(h, "centroids")
		if err != nil {
			return err
		}
		res.Centroids = param.Unflatten(cents, rows, cols)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
