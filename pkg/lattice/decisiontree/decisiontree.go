package decisiontree

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

const algorithm = "decision_tree"

// Model is a trained decision tree held in native memory.
//
// Models must be released with Close when no longer needed. A finalizer is
// set as a safety net, but relying on it can delay the native free
// arbitrarily; prefer defer model.Close().
type Model struct {
	handle backend.DTreeModel
}

func newModel(h backend.DTreeModel) *Model {
	m := &Model{handle: h}
	runtime.SetFinalizer(m, func(m *Model) {
		_ = m.Close()
	})
	return m
}

// Close releases the native tree. It is safe to call more than once, and
// safe when another wrapper shares the same underlying allocation: the
// native free runs exactly once per allocation.
func (m *Model) Close() error {
	if m == nil || m.handle == nil {
		return nil
	}
	backend.DTreeModelFree(m.handle)
	m.handle = nil
	runtime.SetFinalizer(m, nil)
	return nil
}

// Bytes serializes the model into liblattice's opaque byte format for
// storage or transmission. The bytes are produced and later consumed
// entirely by the native side.
func (m *Model) Bytes() ([]byte, error) {
	if m == nil || m.handle == nil {
		return nil, errors.New("nil or closed model")
	}
	data, err := backend.DTreeModelSerialize(m.handle)
	if err != nil {
		return nil, lattice.RemapError(err)
	}
	return data, nil
}

// LoadModel deserializes a model previously produced by Bytes. The
// returned model must be released with Close.
func LoadModel(data []byte) (*Model, error) {
	h, err := backend.DTreeModelDeserialize(data)
	if err != nil {
		return nil, lattice.RemapError(err)
	}
	return newModel(h), nil
}

// Params collects the arguments for one decision_tree invocation. Either
// Training (with Labels) or InputModel is required; everything else is
// optional and forwarded only when set. Values are passed to the native
// side verbatim, without interpretation.
type Params struct {
	// Training holds one observation per row. Requires Labels.
	Training mat.Matrix

	// Labels holds one class label per training observation.
	Labels []int

	// InputModel is a previously trained tree to classify with or to
	// continue from instead of training anew.
	InputModel *Model

	// Test holds observations to classify.
	Test mat.Matrix

	// TestLabels, when given with Test, lets the native side report test
	// accuracy through its own output channel.
	TestLabels []int

	// Weights holds one instance weight per training observation.
	Weights []float64

	MinimumLeafSize       *int
	MaximumDepth          *int
	MinimumGainSplit      *float64
	PrintTrainingAccuracy *bool
}

func (p *Params) table() (*param.Table, error) {
	if p.Training == nil && p.InputModel == nil {
		return nil, errors.New("decisiontree: either Training or InputModel is required")
	}
	if p.Training != nil && p.Labels == nil {
		return nil, errors.New("decisiontree: Labels are required with Training")
	}
	if p.InputModel != nil && p.InputModel.handle == nil {
		return nil, errors.New("decisiontree: InputModel is closed")
	}

	t := param.New()
	if p.Training != nil {
		t.SetMatrix("training", p.Training)
		t.SetLabels("labels", p.Labels)
	}
	if p.InputModel != nil {
		t.SetModel("input_model", algorithm, p.InputModel.handle)
	}
	if p.Test != nil {
		t.SetMatrix("test", p.Test)
	}
	if p.TestLabels != nil {
		t.SetLabels("test_labels", p.TestLabels)
	}
	if p.Weights != nil {
		t.SetVector("weights", p.Weights)
	}
	if p.MinimumLeafSize != nil {
		t.SetInt("minimum_leaf_size", *p.MinimumLeafSize)
	}
	if p.MaximumDepth != nil {
		t.SetInt("maximum_depth", *p.MaximumDepth)
	}
	if p.MinimumGainSplit != nil {
		t.SetDouble("minimum_gain_split", *p.MinimumGainSplit)
	}
	if p.PrintTrainingAccuracy != nil {
		t.SetBool("print_training_accuracy", *p.PrintTrainingAccuracy)
	}
	return t, nil
}

// Result is the fixed output tuple of one invocation. Predictions and
// Probabilities are populated only when Test was passed.
type Result struct {
	// Model is the trained (or passed-through) tree. When InputModel was
	// given and no training happened, Model is that same wrapper.
	Model *Model

	// Predictions holds one predicted class label per test observation.
	Predictions []int

	// Probabilities holds one row per test observation and one column per
	// class.
	Probabilities *mat.Dense
}

// Run invokes the native decision_tree routine once, synchronously.
func Run(ctx context.Context, p *Params) (*Result, error) {
	if p == nil {
		return nil, errors.New("decisiontree: nil params")
	}
	tbl, err := p.table()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = lattice.Invoke(ctx, algorithm, tbl, func(h backend.Params) error {
		out, err := backend.GetDTreeModel(h, "output_model")
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
		preds, err := backend.GetLabels(h, "predictions")
		if err != nil {
			return err
		}
		res.Predictions = make([]int, len(preds))
		for i, v := range preds {
			res.Predictions[i] = int(v)
		}

		probs, rows, cols, err := backend.GetMatrix(h, "probabilities")
		if err != nil {
			return err
		}
		res.Probabilities = param.Unflatten(probs, rows, cols)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
