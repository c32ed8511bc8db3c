package iwp

import (
	"errors"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// Sentinel errors for iwp operations.
var (
	// ErrWorkerFault wraps a panic recovered from inside a tile worker
	// goroutine during RunParallel's phase P2.
	ErrWorkerFault = errors.New("iwp: worker fault during parallel propagation")
)

// Condition decides whether propagating from curr to ngb should occur. It
// is read-only with respect to g and aux: it must not mutate either.
// Aux is shared by reference across every tile worker in RunParallel's
// phase P2 and is never mutated by the engine itself; clients needing
// per-invocation mutable state must place it in g itself.
type Condition[Aux any] func(g pixelgrid.Grid, curr, ngb pixelgrid.Pixel, aux Aux) bool

// Update computes the new value to write at ngb's coordinate when Condition
// has accepted the (curr, ngb) pair. Like Condition, it must not mutate aux.
type Update[Aux any] func(g pixelgrid.Grid, curr, ngb pixelgrid.Pixel, aux Aux) uint32
