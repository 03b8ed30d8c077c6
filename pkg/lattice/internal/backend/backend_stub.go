//go:build !cgo || windows

package backend

import "github.com/latticelearn/lattice-go/pkg/lattice/param"

// Stub implementations for builds without the native bindings. Every
// operation reports ErrNotBuilt; the types mirror the cgo aliases closely
// enough that the public packages compile unchanged.

type unbuiltParams struct{}
type unbuiltTimers struct{}

// Params is a handle to one invocation's native parameter table.
type Params = *unbuiltParams

// Timers is a handle to the per-invocation native timer table.
type Timers = *unbuiltTimers

type (
	unbuiltDTreeModel  struct{}
	unbuiltLinRegModel struct{}
	unbuiltKDEModel    struct{}
)

// Model handle aliases matching the cgo build.
type (
	DTreeModel  = *unbuiltDTreeModel
	LinRegModel = *unbuiltLinRegModel
	KDEModel    = *unbuiltKDEModel
)

func Init(bool, uint64) error { return ErrNotBuilt }

func Version() string { return "" }

func Run(string, Params, Timers) error { return ErrNotBuilt }

func NewParams(string) (Params, error) { return nil, ErrNotBuilt }

func FreeParams(Params) {}

func NewTimers() Timers { return nil }

func FreeTimers(Timers) {}

func Apply(Params, *param.Table) error { return ErrNotBuilt }

func GetMatrix(Params, string) ([]float64, int, int, error) {
	return nil, 0, 0, ErrNotBuilt
}

func GetLabels(Params, string) ([]int64, error) { return nil, ErrNotBuilt }

func GetDouble(Params, string) (float64, error) { return 0, ErrNotBuilt }

func GetInt(Params, string) (int, error) { return 0, ErrNotBuilt }

func GetDTreeModel(Params, string) (DTreeModel, error) { return nil, ErrNotBuilt }

func DTreeModelFree(DTreeModel) {}

func DTreeModelSerialize(DTreeModel) ([]byte, error) { return nil, ErrNotBuilt }

func DTreeModelDeserialize([]byte) (DTreeModel, error) { return nil, ErrNotBuilt }

func GetLinRegModel(Params, string) (LinRegModel, error) { return nil, ErrNotBuilt }

func LinRegModelFree(LinRegModel) {}

func LinRegModelSerialize(LinRegModel) ([]byte, error) { return nil, ErrNotBuilt }

func LinRegModelDeserialize([]byte) (LinRegModel, error) { return nil, ErrNotBuilt }

func GetKDEModel(Params, string) (KDEModel, error) { return nil, ErrNotBuilt }

func KDEModelFree(KDEModel) {}

func KDEModelSerialize(KDEModel) ([]byte, error) { return nil, ErrNotBuilt }

func KDEModelDeserialize([]byte) (KDEModel, error) { return nil, ErrNotBuilt }
