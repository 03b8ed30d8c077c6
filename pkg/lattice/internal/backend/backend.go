//go:build cgo && !windows

package backend

/*
#cgo CXXFLAGS: -std=c++17
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -llattice
#cgo linux LDFLAGS: -L/usr/local/lib -L/usr/local/lib64
#cgo darwin LDFLAGS: -L/usr/local/opt/lattice/lib

#include <stdlib.h>
#include <string.h>
#include "lattice/capi.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init performs the process-wide one-time library initialization. Repeated
// calls return the first outcome; there are no ordering requirements
// beyond "before the first Run".
func Init(verbose bool, seed uint64) error {
	initOnce.Do(func() {
		v := C.int(0)
		if verbose {
			v = 1
		}
		if C.lattice_init(v, C.uint64_t(seed)) != 0 {
			initErr = ErrRunFailed
		}
	})
	return initErr
}

// Version returns the version string compiled into liblattice.
func Version() string {
	return C.GoString(C.lattice_version())
}

// Run invokes one native routine with the populated parameter table. The
// native side signals failure with a zero return; all failure modes
// collapse to ErrRunFailed.
func Run(algorithm string, p Params, t Timers) error {
	cname := C.CString(algorithm)
	defer C.free(unsafe.Pointer(cname))

	if C.lattice_run(cname, p, t) == 0 {
		return ErrRunFailed
	}
	return nil
}
