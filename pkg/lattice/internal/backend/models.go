//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include <string.h>
#include "lattice/capi.h"
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// Model handle aliases. The pointed-to state is opaque native memory;
// this layer only moves the pointers across the boundary.
type (
	DTreeModel  = *C.lattice_dtree_model
	LinRegModel = *C.lattice_linreg_model
	KDEModel    = *C.lattice_kde_model
)

// ownedModels records every model pointer currently owned by a Go
// wrapper. A pointer that a routine both consumed and re-emitted appears
// once, so the matching native free runs exactly once.
var ownedModels sync.Map

func adopt(ptr unsafe.Pointer) {
	if ptr != nil {
		ownedModels.LoadOrStore(ptr, struct{}{})
	}
}

// disown removes ptr from the owned set, reporting whether this caller
// held the single ownership and should invoke the native free.
func disown(ptr unsafe.Pointer) bool {
	if ptr == nil {
		return false
	}
	_, loaded := ownedModels.LoadAndDelete(ptr)
	return loaded
}

func setModelParam(p Params, cname *C.char, handle any) error {
	switch m := handle.(type) {
	case DTreeModel:
		C.lattice_set_param_dtree_model(p, cname, m)
	case LinRegModel:
		C.lattice_set_param_linreg_model(p, cname, m)
	case KDEModel:
		C.lattice_set_param_kde_model(p, cname, m)
	default:
		return fmt.Errorf("unsupported model handle type %T", handle)
	}
	return nil
}

// Decision tree model.

func GetDTreeModel(p Params, name string) (DTreeModel, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var m DTreeModel
	if C.lattice_get_param_dtree_model(p, cname, &m) == 0 {
		return nil, fmt.Errorf("extract model %q: %w", name, ErrRunFailed)
	}
	adopt(unsafe.Pointer(m))
	return m, nil
}

func DTreeModelFree(m DTreeModel) {
	if m == nil || !disown(unsafe.Pointer(m)) {
		return
	}
	C.lattice_dtree_model_free(m)
}

func DTreeModelSerialize(m DTreeModel) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model")
	}
	var data *C.uint8_t
	var n C.size_t
	if C.lattice_dtree_model_serialize(m, &data, &n) == 0 {
		return nil, ErrRunFailed
	}
	return takeBytes(unsafe.Pointer(data), int(n)), nil
}

func DTreeModelDeserialize(data []byte) (DTreeModel, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty model data")
	}
	var m DTreeModel
	if C.lattice_dtree_model_deserialize((*C.uint8_t)(unsafe.Pointer(&data[0])), C.size_t(len(data)), &m) == 0 {
		return nil, ErrRunFailed
	}
	adopt(unsafe.Pointer(m))
	return m, nil
}

// Linear regression model.

func GetLinRegModel(p Params, name string) (LinRegModel, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var m LinRegModel
	if C.lattice_get_param_linreg_model(p, cname, &m) == 0 {
		return nil, fmt.Errorf("extract model %q: %w", name, ErrRunFailed)
	}
	adopt(unsafe.Pointer(m))
	return m, nil
}

func LinRegModelFree(m LinRegModel) {
	if m == nil || !disown(unsafe.Pointer(m)) {
		return
	}
	C.lattice_linreg_model_free(m)
}

func LinRegModelSerialize(m LinRegModel) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model")
	}
	var data *C.uint8_t
	var n C.size_t
	if C.lattice_linreg_model_serialize(m, &data, &n) == 0 {
		return nil, ErrRunFailed
	}
	return takeBytes(unsafe.Pointer(data), int(n)), nil
}

func LinRegModelDeserialize(data []byte) (LinRegModel, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty model data")
	}
	var m LinRegModel
	if C.lattice_linreg_model_deserialize((*C.uint8_t)(unsafe.Pointer(&data[0])), C.size_t(len(data)), &m) == 0 {
		return nil, ErrRunFailed
	}
	adopt(unsafe.Pointer(m))
	return m, nil
}

// KDE model.

func GetKDEModel(p Params, name string) (KDEModel, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var m KDEModel
	if C.lattice_get_param_kde_model(p, cname, &m) == 0 {
		return nil, fmt.Errorf("extract model %q: %w", name, ErrRunFailed)
	}
	adopt(unsafe.Pointer(m))
	return m, nil
}

func KDEModelFree(m KDEModel) {
	if m == nil || !disown(unsafe.Pointer(m)) {
		return
	}
	C.lattice_kde_model_free(m)
}

func KDEModelSerialize(m KDEModel) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model")
	}
	var data *C.uint8_t
	var n C.size_t
	if C.lattice_kde_model_serialize(m, &data, &n) == 0 {
		return nil, ErrRunFailed
	}
	return takeBytes(unsafe.Pointer(data), int(n)), nil
}

func KDEModelDeserialize(data []byte) (KDEModel, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty model data")
	}
	var m KDEModel
	if C.lattice_kde_model_deserialize((*C.uint8_t)(unsafe.Pointer(&data[0])), C.size_t(len(data)), &m) == 0 {
		return nil, ErrRunFailed
	}
	adopt(unsafe.Pointer(m))
	return m, nil
}

// takeBytes copies n bytes of C memory into a Go slice and frees the C
// allocation. The caller must not touch the C pointer afterwards.
func takeBytes(ptr unsafe.Pointer, n int) []byte {
	if ptr == nil || n <= 0 {
		return nil
	}
	out := C.GoBytes(ptr, C.int(n))
	C.lattice_buffer_free(ptr)
	return out
}
