package pca

import (
	"context"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

const algorithm = "pca"

// Params collects the arguments for one pca invocation. Input is
// required. DecompositionMethod names a native solver variant and is
// forwarded verbatim.
type Params struct {
	// Input holds one observation per row.
	Input mat.Matrix

	NewDimensionality   *int
	Scale               *bool
	VarianceToRetain    *float64
	DecompositionMethod *string
}

func (p *Params) table() (*param.Table, error) {
	if p.Input == nil {
		return nil, errors.New("pca: Input is required")
	}

	t := param.New()
	t.SetMatrix("input", p.Input)
	if p.NewDimensionality != nil {
		t.SetInt("new_dimensionality", *p.NewDimensionality)
	}
	if p.Scale != nil {
		t.SetBool("scale", *p.Scale)
	}
	if p.VarianceToRetain != nil {
		t.SetDouble("var_to_retain", *p.VarianceToRetain)
	}
	if p.DecompositionMethod != nil {
		t.SetString("decomposition_method", *p.DecompositionMethod)
	}
	return t, nil
}

// Result is the fixed output tuple.
type Result struct {
	// Output holds the transformed dataset, one observation per row.
	Output *mat.Dense
}

// Run invokes the native pca routine once, synchronously.
func Run(ctx context.Context, p *Params) (*Result, error) {
	if p == nil {
		return nil, errors.New("pca: nil params")
	}
	tbl, err := p.table()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = lattice.Invoke(ctx, algorithm, tbl, func(h backend.Params) error {
		out, rows, cols, err := backend.GetMatrix(h, "output")
		if err != nil {
			return err
		}
		res.Output = param.Unflatten(out, rows, cols)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
