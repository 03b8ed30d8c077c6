package linearregression

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

const algorithm = "linear_regression"

// Model is a fitted regression model held in native memory. Release with
// Close; a finalizer runs as a safety net.
type Model struct {
	handle backend.LinRegModel
}

func newModel(h backend.LinRegModel) *Model {
	m := &Model{handle: h}
	runtime.SetFinalizer(m, func(m *Model) {
		_ = m.Close()
	})
	return m
}

// Close releases the native model. Safe to call more than once; the
// native free runs exactly once per underlying allocation.
func (m *Model) Close() error {
	if m == nil || m.handle == nil {
		return nil
	}
	backend.LinRegModelFree(m.handle)
	m.handle = nil
	runtime.SetFinalizer(m, nil)
	return nil
}

// Bytes serializes the model into liblattice's opaque byte format.
func (m *Model) Bytes() ([]byte, error) {
	if m == nil || m.handle == nil {
		return nil, errors.New("nil or closed model")
	}
	data, err := backend.LinRegModelSerialize(m.handle)
	if err != nil {
		return nil, lattice.RemapError(err)
	}
	return data, nil
}

// LoadModel deserializes a model previously produced by Bytes.
func LoadModel(data []byte) (*Model, error) {
	h, err := backend.LinRegModelDeserialize(data)
	if err != nil {
		return nil, lattice.RemapError(err)
	}
	return newModel(h), nil
}

// Params collects the arguments for one linear_regression invocation.
// Either Training (with Responses) or InputModel is required.
type Params struct {
	// Training holds one observation per row. Requires Responses.
	Training mat.Matrix

	// Responses holds one target value per training observation.
	Responses []float64

	// InputModel is a previously fitted model to predict with.
	InputModel *Model

	// Test holds observations to predict responses for.
	Test mat.Matrix

	// Lambda is the ridge regularization strength.
	Lambda *float64
}

func (p *Params) table() (*param.Table, error) {
	if p.Training == nil && p.InputModel == nil {
		return nil, errors.New("linearregression: either Training or InputModel is required")
	}
	if p.Training != nil && p.Responses == nil {
		return nil, errors.New("linearregression: Responses are required with Training")
	}
	if p.InputModel != nil && p.InputModel.handle == nil {
		return nil, errors.New("linearregression: InputModel is closed")
	}

	t := param.New()
	if p.Training != nil {
		t.SetMatrix("training", p.Training)
		t.SetVector("training_responses", p.Responses)
	}
	if p.InputModel != nil {
		t.SetModel("input_model", algorithm, p.InputModel.handle)
	}
	if p.Test != nil {
		t.SetMatrix("test", p.Test)
	}
	if p.Lambda != nil {
		t.SetDouble("lambda", *p.Lambda)
	}
	return t, nil
}

// Result is the fixed output tuple. Predictions is populated only when
// Test was passed.
type Result struct {
	Model       *Model
	Predictions []float64
}

// Run invokes the native linear_regression routine once, synchronously.
func Run(ctx context.Context, p *Params) (*Result, error) {
	if p == nil {
		return nil, errors.New("linearregression: nil params")
	}
	tbl, err := p.table()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = lattice.Invoke(ctx, algorithm, tbl, func(h backend.Params) error {
		out, err := backend.GetLinRegModel(h, "output_model")
		if err != nil {
			return err
		}
		if p.InputModel != nil && out == p.InputModel.handle {
			res.Model = p.InputModel
		} else {
			res.Model = newModel(out)
		}

		if p.Test == nil {
			return nil
		}
		preds, _, _, err := backend.GetMatrix(h, "output_predictions")
		if err != nil {
			return err
		}
		res.Predictions = preds
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
