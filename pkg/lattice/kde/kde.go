package kde

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

const algorithm = "kde"

// Model is a fitted density estimator held in native memory. Release with
// Close; a finalizer runs as a safety net.
type Model struct {
	handle backend.KDEModel
}

func newModel(h backend.KDEModel) *Model {
	m := &Model{handle: h}
	runtime.SetFinalizer(m, func(m *Model) {
		_ = m.Close()
	})
	return m
}

// Close releases the native estimator. Safe to call more than once; the
// native free runs exactly once per underlying allocation.
func (m *Model) Close() error {
	if m == nil || m.handle == nil {
		return nil
	}
	backend.KDEModelFree(m.handle)
	m.handle = nil
	runtime.SetFinalizer(m, nil)
	return nil
}

// Bytes serializes the estimator into liblattice's opaque byte format.
func (m *Model) Bytes() ([]byte, error) {
	if m == nil || m.handle == nil {
		return nil, errors.New("nil or closed model")
	}
	data, err := backend.KDEModelSerialize(m.handle)
	if err != nil {
		return nil, lattice.RemapError(err)
	}
	return data, nil
}

// LoadModel deserializes an estimator previously produced by Bytes.
func LoadModel(data []byte) (*Model, error) {
	h, err := backend.KDEModelDeserialize(data)
	if err != nil {
		return nil, lattice.RemapError(err)
	}
	return newModel(h), nil
}

// Params collects the arguments for one kde invocation. Either Reference
// or InputModel is required. Kernel, Tree and Algorithm name native
// variants and are forwarded verbatim.
type Params struct {
	// Reference holds the observations the density is estimated from,
	// one per row.
	Reference mat.Matrix

	// InputModel is a previously fitted estimator to query instead of
	// building one from Reference.
	InputModel *Model

	// Query holds the points to evaluate, one per row. Without Query the
	// density is evaluated at the reference points themselves.
	Query mat.Matrix

	Bandwidth     *float64
	Kernel        *string
	Tree          *string
	Algorithm     *string
	RelativeError *float64
	AbsoluteError *float64
	MonteCarlo    *bool
}

func (p *Params) table() (*param.Table, error) {
	if p.Reference == nil && p.InputModel == nil {
		return nil, errors.New("kde: either Reference or InputModel is required")
	}
	if p.InputModel != nil && p.InputModel.handle == nil {
		return nil, errors.New("kde: InputModel is closed")
	}

	t := param.New()
	if p.Reference != nil {
		t.SetMatrix("reference", p.Reference)
	}
	if p.InputModel != nil {
		t.SetModel("input_model", algorithm, p.InputModel.handle)
	}
	if p.Query != nil {
		t.SetMatrix("query", p.Query)
	}
	if p.Bandwidth != nil {
		t.SetDouble("bandwidth", *p.Bandwidth)
	}
	if p.Kernel != nil {
		t.SetString("kernel", *p.Kernel)
	}
	if p.Tree != nil {
		t.SetString("tree", *p.Tree)
	}
	if p.Algorithm != nil {
		t.SetString("algorithm", *p.Algorithm)
	}
	if p.RelativeError != nil {
		t.SetDouble("rel_error", *p.RelativeError)
	}
	if p.AbsoluteError != nil {
		t.SetDouble("abs_error", *p.AbsoluteError)
	}
	if p.MonteCarlo != nil {
		t.SetBool("monte_carlo", *p.MonteCarlo)
	}
	return t, nil
}

// Result is the fixed output tuple.
type Result struct {
	// Estimates holds one density value per query point (per reference
	// point when no Query was passed).
	Estimates []float64

	// Model is the fitted estimator. When InputModel was given, Model is
	// that same wrapper.
	Model *Model
}

// Run invokes the native kde routine once, synchronously.
func Run(ctx context.Context, p *Params) (*Result, error) {
	if p == nil {
		return nil, errors.New("kde: nil params")
	}
	tbl, err := p.table()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = lattice.Invoke(ctx, algorithm, tbl, func(h backend.Params) error {
		out, err := backend.GetKDEModel(h, "output_model")
		if err != nil {
			return err
		}
		if p.InputModel != nil && out == p.InputModel.handle {
			res.Model = p.InputModel
		} else {
			res.Model = newModel(out)
		}

		ests, _, _, err := backend.GetMatrix(h, "predictions")
		if err != nil {
			return err
		}
		res.Estimates = ests
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
