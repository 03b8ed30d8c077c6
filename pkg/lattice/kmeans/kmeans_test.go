package kmeans

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/latticelearn/lattice-go/pkg/lattice"
)

func TestTableForwardsExactlyThePassedArguments(t *testing.T) {
	input := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		5, 5,
		5, 6,
	})
	p := &Params{
		Input:     input,
		Clusters:  2,
		Algorithm: lattice.Str("dual-tree"),
		Seed:      lattice.Int(42),
	}

	tbl, err := p.table()
	require.NoError(t, err)

	require.Equal(t, 4, tbl.Len())
	assert.True(t, tbl.Has("input"))
	assert.True(t, tbl.Has("clusters"))
	assert.True(t, tbl.Has("algorithm"))
	assert.True(t, tbl.Has("seed"))

	assert.False(t, tbl.Has("max_iterations"))
	assert.False(t, tbl.Has("percentage"))
	assert.False(t, tbl.Has("allow_empty_clusters"))
	assert.False(t, tbl.Has("labels_only"))
	assert.False(t, tbl.Has("initial_centroids"))
}

func TestTableRequiresInput(t *testing.T) {
	_, err := (&Params{Clusters: 2}).table()
	assert.ErrorContains(t, err, "Input is required")
}

func TestTableRequiresPositiveClusters(t *testing.T) {
	input := mat.NewDense(1, 1, []float64{0})
	_, err := (&Params{Input: input}).table()
	assert.ErrorContains(t, err, "Clusters must be positive")

	_, err = (&Params{Input: input, Clusters: -3}).table()
	assert.ErrorContains(t, err, "Clusters must be positive")
}

func TestRunNilParams(t *testing.T) {
	_, err := Run(context.Background(), nil)
	assert.ErrorContains(t, err, "nil params")
}
