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
	"unsafe"

	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

// Params is a handle to one invocation's native parameter table.
type Params = *C.lattice_params

// Timers is a handle to the per-invocation native timer table.
type Timers = *C.lattice_timers

// NewParams creates the parameter table for one invocation of algorithm.
// The table must be released with FreeParams after the outputs have been
// extracted.
func NewParams(algorithm string) (Params, error) {
	cname := C.CString(algorithm)
	defer C.free(unsafe.Pointer(cname))

	p := C.lattice_params_create(cname)
	if p == nil {
		return nil, fmt.Errorf("create parameter table for %q: %w", algorithm, ErrRunFailed)
	}
	return p, nil
}

// FreeParams releases the parameter table. Output buffers already copied
// to Go memory stay valid.
func FreeParams(p Params) {
	if p != nil {
		C.lattice_params_free(p)
	}
}

// NewTimers creates the timer table passed alongside the parameters.
func NewTimers() Timers {
	return C.lattice_timers_create()
}

// FreeTimers releases the timer table.
func FreeTimers(t Timers) {
	if t != nil {
		C.lattice_timers_free(t)
	}
}

// Apply copies every entry of the table into the native parameter store
// and marks it as passed. Dataset buffers are borrowed Go memory; the
// native side copies them before Apply returns. Model handles are
// borrowed, never freed here.
func Apply(p Params, t *param.Table) error {
	for _, e := range t.Entries() {
		cname := C.CString(e.Name)

		switch e.Kind {
		case param.Int:
			C.lattice_set_param_int(p, cname, C.int(e.IntVal))
		case param.Double:
			C.lattice_set_param_double(p, cname, C.double(e.DoubleVal))
		case param.Bool:
			v := C.int(0)
			if e.BoolVal {
				v = 1
			}
			C.lattice_set_param_bool(p, cname, v)
		case param.String:
			cval := C.CString(e.StrVal)
			C.lattice_set_param_string(p, cname, cval)
			C.free(unsafe.Pointer(cval))
		case param.Matrix:
			var ptr *C.double
			if len(e.Data) > 0 {
				ptr = (*C.double)(unsafe.Pointer(&e.Data[0]))
			}
			C.lattice_set_param_mat(p, cname, ptr, C.size_t(e.Rows), C.size_t(e.Cols))
		case param.Labels:
			var ptr *C.int64_t
			if len(e.LabelVals) > 0 {
				ptr = (*C.int64_t)(unsafe.Pointer(&e.LabelVals[0]))
			}
			C.lattice_set_param_urow(p, cname, ptr, C.size_t(len(e.LabelVals)))
		case param.Model:
			if err := setModelParam(p, cname, e.Handle); err != nil {
				C.free(unsafe.Pointer(cname))
				return err
			}
		default:
			C.free(unsafe.Pointer(cname))
			return fmt.Errorf("parameter %q has unknown kind %v", e.Name, e.Kind)
		}

		C.lattice_set_passed(p, cname)
		C.free(unsafe.Pointer(cname))
	}
	return nil
}

// GetMatrix extracts a matrix output. The returned slice is a Go copy in
// native layout (rows x cols, column-major, one observation per column);
// the C buffer is freed before returning.
func GetMatrix(p Params, name string) ([]float64, int, int, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var data *C.double
	var rows, cols C.size_t
	if C.lattice_get_param_mat(p, cname, &data, &rows, &cols) == 0 {
		return nil, 0, 0, fmt.Errorf("extract matrix %q: %w", name, ErrRunFailed)
	}
	n := int(rows) * int(cols)
	out := make([]float64, n)
	if n > 0 && data != nil {
		copy(out, unsafe.Slice((*float64)(unsafe.Pointer(data)), n))
	}
	if data != nil {
		C.lattice_buffer_free(unsafe.Pointer(data))
	}
	return out, int(rows), int(cols), nil
}

// GetLabels extracts an integer row output, one value per observation.
func GetLabels(p Params, name string) ([]int64, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var data *C.int64_t
	var n C.size_t
	if C.lattice_get_param_urow(p, cname, &data, &n) == 0 {
		return nil, fmt.Errorf("extract labels %q: %w", name, ErrRunFailed)
	}
	out := make([]int64, int(n))
	if n > 0 && data != nil {
		copy(out, unsafe.Slice((*int64)(unsafe.Pointer(data)), int(n)))
	}
	if data != nil {
		C.lattice_buffer_free(unsafe.Pointer(data))
	}
	return out, nil
}

// GetDouble extracts a scalar output.
func GetDouble(p Params, name string) (float64, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var v C.double
	if C.lattice_get_param_double(p, cname, &v) == 0 {
		return 0, fmt.Errorf("extract double %q: %w", name, ErrRunFailed)
	}
	return float64(v), nil
}

// GetInt extracts an integer scalar output.
func GetInt(p Params, name string) (int, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var v C.int
	if C.lattice_get_param_int(p, cname, &v) == 0 {
		return 0, fmt.Errorf("extract int %q: %w", name, ErrRunFailed)
	}
	return int(v), nil
}
