package kde

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
)

func TestTableForwardsExactlyThePassedArguments(t *testing.T) {
	ref := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 1,
		2, 2,
	})
	p := &Params{
		Reference: ref,
		Bandwidth: lattice.Float(0.5),
		Kernel:    lattice.Str("gaussian"),
	}

	tbl, err := p.table()
	require.NoError(t, err)

	require.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.Has("reference"))
	assert.True(t, tbl.Has("bandwidth"))
	assert.True(t, tbl.Has("kernel"))

	assert.False(t, tbl.Has("query"))
	assert.False(t, tbl.Has("tree"))
	assert.False(t, tbl.Has("algorithm"))
	assert.False(t, tbl.Has("rel_error"))
	assert.False(t, tbl.Has("abs_error"))
	assert.False(t, tbl.Has("monte_carlo"))
	assert.False(t, tbl.Has("input_model"))
}

func TestTableRequiresReferenceOrInputModel(t *testing.T) {
	_, err := (&Params{}).table()
	assert.ErrorContains(t, err, "either Reference or InputModel")
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
