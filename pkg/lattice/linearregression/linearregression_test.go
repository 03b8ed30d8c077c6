package linearregression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

func TestTableForwardsExactlyThePassedArguments(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	p := &Params{
		Training:  x,
		Responses: []float64{2, 4, 6},
		Lambda:    lattice.Float(0.1),
	}

	tbl, err := p.table()
	require.NoError(t, err)

	require.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.Has("training"))
	assert.True(t, tbl.Has("training_responses"))
	assert.True(t, tbl.Has("lambda"))
	assert.False(t, tbl.Has("test"))
	assert.False(t, tbl.Has("input_model"))

	for _, e := range tbl.Entries() {
		if e.Name == "training_responses" {
			assert.Equal(t, param.Matrix, e.Kind)
			assert.Equal(t, 1, e.Rows)
			assert.Equal(t, 3, e.Cols)
			assert.Equal(t, []float64{2, 4, 6}, e.Data)
		}
	}
}

func TestTableRequiresTrainingOrInputModel(t *testing.T) {
	_, err := (&Params{}).table()
	assert.ErrorContains(t, err, "either Training or InputModel")
}

func TestTableRequiresResponsesWithTraining(t *testing.T) {
	x := mat.NewDense(1, 1, []float64{1})
	_, err := (&Params{Training: x}).table()
	assert.ErrorContains(t, err, "Responses are required")
}

func TestTableRejectsClosedInputModel(t *testing.T) {
	_, err := (&Params{InputModel: &Model{}}).table()
	assert.ErrorContains(t, err, "InputModel is closed")
}

func TestRunNilParams(t *testing.T) {
	_, err := Run(context.Background(), nil)
	assert.ErrorContains(t, err, "nil params")
}

func TestCloseIsIdempotent(t *testing.T) {
	m := &Model{}
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())

	_, err := m.Bytes()
	assert.ErrorContains(t, err, "closed model")
}
