package param

import "gonum.org/v1/gonum/mat"

// Kind identifies the native type an entry is forwarded as.
type Kind int

const (
	Int Kind = iota
	Double
	Bool
	String
	Matrix
	Labels
	Model
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Matrix:
		return "matrix"
	case Labels:
		return "labels"
	case Model:
		return "model"
	default:
		return "unknown"
	}
}

// Entry is one parameter forwarded to the native table. Only the fields
// relevant to its Kind are populated.
type Entry struct {
	Name string
	Kind Kind

	IntVal    int
	DoubleVal float64
	BoolVal   bool
	StrVal    string

	// Matrix payload in native layout: Data holds a Rows x Cols
	// column-major matrix where each column is one observation.
	Data []float64
	Rows int
	Cols int

	// Labels payload, one label per observation.
	LabelVals []int64

	// Model payload: an opaque backend handle plus the native model-type
	// name used to pick the setter on the other side of the boundary.
	Handle    any
	ModelType string
}

// Table is the ordered set of parameters for a single invocation. Setting
// a name twice replaces the earlier entry in place.
type Table struct {
	entries []Entry
	index   map[string]int
}

func New() *Table {
	return &Table{index: make(map[string]int)}
}

func (t *Table) put(e Entry) {
	if i, ok := t.index[e.Name]; ok {
		t.entries[i] = e
		return
	}
	t.index[e.Name] = len(t.entries)
	t.entries = append(t.entries, e)
}

func (t *Table) SetInt(name string, v int) {
	t.put(Entry{Name: name, Kind: Int, IntVal: v})
}

func (t *Table) SetDouble(name string, v float64) {
	t.put(Entry{Name: name, Kind: Double, DoubleVal: v})
}

func (t *Table) SetBool(name string, v bool) {
	t.put(Entry{Name: name, Kind: Bool, BoolVal: v})
}

func (t *Table) SetString(name, v string) {
	t.put(Entry{Name: name, Kind: String, StrVal: v})
}

// SetMatrix copies m into native layout. The Go convention is one
// observation per row; the native convention is one observation per
// column, column-major, so the flattened row-major Go data is exactly the
// native buffer with the dimensions swapped.
func (t *Table) SetMatrix(name string, m mat.Matrix) {
	data, rows, cols := Flatten(m)
	t.put(Entry{Name: name, Kind: Matrix, Data: data, Rows: cols, Cols: rows})
}

// SetVector forwards a row vector of doubles (responses, weights) as a
// 1 x n matrix.
func (t *Table) SetVector(name string, v []float64) {
	data := make([]float64, len(v))
	copy(data, v)
	t.put(Entry{Name: name, Kind: Matrix, Data: data, Rows: 1, Cols: len(v)})
}

// SetLabels forwards one integer label per observation.
func (t *Table) SetLabels(name string, labels []int) {
	vals := make([]int64, len(labels))
	for i, l := range labels {
		vals[i] = int64(l)
	}
	t.put(Entry{Name: name, Kind: Labels, LabelVals: vals})
}

// SetModel forwards an opaque model handle. The handle is borrowed for the
// duration of the invocation; the table never frees it.
func (t *Table) SetModel(name, modelType string, handle any) {
	t.put(Entry{Name: name, Kind: Model, Handle: handle, ModelType: modelType})
}

// Has reports whether name was set.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of forwarded parameters.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the forwarded parameters in insertion order.
func (t *Table) Entries() []Entry { return t.entries }

// Flatten copies m into a row-major []float64 and returns it with m's Go
// dimensions (rows = observations, cols = features).
func Flatten(m mat.Matrix) ([]float64, int, int) {
	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.At(i, j)
		}
	}
	return data, rows, cols
}

// Unflatten is the inverse of the native matrix layout: a native rows x
// cols column-major buffer (one observation per column) becomes a gonum
// matrix with cols observations as rows and rows features as columns.
func Unflatten(data []float64, rows, cols int) *mat.Dense {
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(cols, rows, data)
}
