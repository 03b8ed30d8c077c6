package lattice

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
	"github.com/latticelearn/lattice-go/pkg/lattice/logging"
	"github.com/latticelearn/lattice-go/pkg/lattice/param"
)

// Invoke performs one synchronous native call: it creates the per-call
// parameter and timer tables, copies the entries in, runs the routine, and
// hands the still-live table to extract for output extraction. Both tables
// are released before Invoke returns. Exported for use by the algorithm
// subpackages; applications call the typed Run functions instead.
func Invoke(ctx context.Context, algorithm string, tbl *param.Table, extract func(p backend.Params) error) error {
	p, err := backend.NewParams(algorithm)
	if err != nil {
		return RemapError(err)
	}
	defer backend.FreeParams(p)

	tm := backend.NewTimers()
	defer backend.FreeTimers(tm)

	if err := backend.Apply(p, tbl); err != nil {
		return RemapError(err)
	}

	// The native call is blocking and cannot be cancelled; honor an
	// already-expired context before crossing the boundary.
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	err = backend.Run(algorithm, p, tm)
	logging.Invocation(algorithm, tbl.Len(), time.Since(start), err)
	if err != nil {
		return errors.Wrap(RemapError(err), algorithm)
	}

	if extract != nil {
		if err := extract(p); err != nil {
			return errors.Wrap(RemapError(err), algorithm)
		}
	}
	return nil
}
