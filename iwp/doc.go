// Package iwp implements Iterated Wavefront Propagation: a generic
// FIFO-driven engine parameterised by two user predicates (Condition and
// Update) and a read-only auxiliary payload, plus a tiled variant that
// runs the same engine concurrently over disjoint image sections before a
// deterministic sequential pass reconciles the tile seams.
//
// Run is the sequential engine. RunParallel is the tiled
// engine: phase P1 partitions the image and the seed queue
// per tile.Arrange, phase P2 runs Run-equivalent propagation inside
// each tile concurrently, phase P3 reassembles the tiles with
// tile.Assemble, and phase P4 re-runs Run against the assembled image
// seeded at every internal tile border.
//
// Complexity:
//
//   - Run: O(k * transitions accepted), k = 8.
//   - RunParallel: same total work as Run, spread across goroutines for
//     phase P2, plus O(W×H) for Arrange/Assemble.
//   - Queue.Push/Pop: amortised O(1).
//
// Errors:
//
//	ErrWorkerFault - a tile worker panicked; recovered at join and
//	                 returned as an error wrapping this sentinel.
package iwp
