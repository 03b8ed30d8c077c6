package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTableForwardsOnlySetEntries(t *testing.T) {
	tbl := New()
	tbl.SetInt("clusters", 3)
	tbl.SetDouble("percentage", 0.5)

	require.Equal(t, 2, tbl.Len())
	assert.True(t, tbl.Has("clusters"))
	assert.True(t, tbl.Has("percentage"))
	assert.False(t, tbl.Has("max_iterations"))

	entries := tbl.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "clusters", entries[0].Name)
	assert.Equal(t, Int, entries[0].Kind)
	assert.Equal(t, 3, entries[0].IntVal)
	assert.Equal(t, "percentage", entries[1].Name)
	assert.Equal(t, Double, entries[1].Kind)
	assert.Equal(t, 0.5, entries[1].DoubleVal)
}

func TestTableReplacesDuplicateNameInPlace(t *testing.T) {
	tbl := New()
	tbl.SetInt("seed", 1)
	tbl.SetString("algorithm", "naive")
	tbl.SetInt("seed", 7)

	require.Equal(t, 2, tbl.Len())
	entries := tbl.Entries()
	assert.Equal(t, "seed", entries[0].Name)
	assert.Equal(t, 7, entries[0].IntVal)
	assert.Equal(t, "algorithm", entries[1].Name)
}

func TestSetMatrixUsesNativeLayout(t *testing.T) {
	// Two observations (rows) with three features (cols). The native
	// side wants features x observations, column-major, which is exactly
	// the row-major flattening with swapped dimensions.
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	tbl := New()
	tbl.SetMatrix("training", m)

	entries := tbl.Entries()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, Matrix, e.Kind)
	assert.Equal(t, 3, e.Rows)
	assert.Equal(t, 2, e.Cols)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, e.Data)
}

func TestSetVectorCopies(t *testing.T) {
	v := []float64{0.1, 0.2}
	tbl := New()
	tbl.SetVector("weights", v)
	v[0] = 99

	e := tbl.Entries()[0]
	assert.Equal(t, Matrix, e.Kind)
	assert.Equal(t, 1, e.Rows)
	assert.Equal(t, 2, e.Cols)
	assert.Equal(t, []float64{0.1, 0.2}, e.Data)
}

func TestSetLabels(t *testing.T) {
	tbl := New()
	tbl.SetLabels("labels", []int{0, 1, 2})

	e := tbl.Entries()[0]
	assert.Equal(t, Labels, e.Kind)
	assert.Equal(t, []int64{0, 1, 2}, e.LabelVals)
}

func TestSetModelBorrowsHandle(t *testing.T) {
	handle := &struct{}{}
	tbl := New()
	tbl.SetModel("input_model", "kde", handle)

	e := tbl.Entries()[0]
	assert.Equal(t, Model, e.Kind)
	assert.Equal(t, "kde", e.ModelType)
	assert.Same(t, handle, e.Handle.(*struct{}))
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
	})

	data, rows, cols := Flatten(m)
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)

	// Native representation swaps the dimensions.
	back := Unflatten(data, cols, rows)
	assert.True(t, mat.Equal(m, back))
}

func TestUnflattenEmpty(t *testing.T) {
	out := Unflatten(nil, 0, 0)
	r, c := out.Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
}
