package iwp

import (
	"fmt"
	"sync"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
	"github.com/luiz-couto/image-processing-iwp/tile"
)

// RunParallel is the tiled engine: it partitions full into
// nTiles sections (phase P1), runs the sequential engine against each
// section concurrently within a bounded worker group (phase P2), reassembles
// the sections into a fresh image (phase P3), then runs the sequential
// engine once more, seeded at every internal tile border, against the
// reassembled image (phase P4) to repair cross-tile dependencies the
// concurrent phase could only under-propagate.
//
// newSlice allocates each tile's private working slice; newFull allocates
// the reassembled full image. Both are typically the same factory
// (pixelgrid.Image8Factory or pixelgrid.Image32Factory) — they are
// separate parameters only because Section and the reassembled image are
// conceptually distinct grids.
//
// aux is shared by every worker through a single read-only value: Aux
// must not be mutated by cond or update.
//
// Failure semantics: a panic inside any worker goroutine is recovered at
// the join point and surfaced as an error wrapping ErrWorkerFault; the
// partially-propagated tiles are discarded (the function returns nil, err).
//
// Complexity: O(k * transitions) total work, same asymptotic bound as Run,
// spread across nTiles goroutines for phase P2, plus O(W×H) for tiling and
// reassembly.
func RunParallel[Aux any](
	full pixelgrid.Grid,
	cond Condition[Aux],
	update Update[Aux],
	seeds []pixelgrid.Coord,
	aux Aux,
	nTiles int,
	newSlice tile.Factory,
	newFull tile.Factory,
) (pixelgrid.Grid, error) {
	sections, err := tile.Arrange(full, nTiles, newSlice)
	if err != nil {
		return nil, err
	}

	secQueues := assignSeeds(sections, seeds)

	if err := runTilesConcurrently(sections, secQueues, cond, update, aux); err != nil {
		return nil, err
	}

	reassembled, err := tile.Assemble(full.Width(), full.Height(), sections, newFull)
	if err != nil {
		return nil, err
	}

	borderSeeds := collectInternalBorders(sections, full.Width(), full.Height())
	Run(reassembled, cond, update, NewQueue(borderSeeds), aux)

	return reassembled, nil
}

// assignSeeds partitions seeds into per-section absolute-coordinate queues.
// Every seed falls in exactly one section because Arrange's sections are
// disjoint and exhaustive.
func assignSeeds(sections []tile.Section, seeds []pixelgrid.Coord) [][]pixelgrid.Coord {
	out := make([][]pixelgrid.Coord, len(sections))
	for _, c := range seeds {
		for i := range sections {
			if sections[i].InSection(c.X, c.Y) {
				out[i] = append(out[i], c)

				break
			}
		}
	}

	return out
}

// runTilesConcurrently spawns one worker per section within a bounded
// group: the function does not return until every worker has finished,
// bounding worker lifetime to this call (a scoped concurrency region,
// the Go-idiomatic reading of a thread-scope join).
func runTilesConcurrently[Aux any](
	sections []tile.Section,
	secQueues [][]pixelgrid.Coord,
	cond Condition[Aux],
	update Update[Aux],
	aux Aux,
) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(sections))

	for i := range sections {
		wg.Add(1)
		go func(sec *tile.Section, seeds []pixelgrid.Coord) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs <- fmt.Errorf("%w: %v", ErrWorkerFault, r)
				}
			}()
			tileRun(sec, cond, update, NewQueue(seeds), aux)
		}(&sections[i], secQueues[i])
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// tileRun propagates within a single section. The queue holds absolute
// image coordinates (so cond and update always see the same coordinate
// space aux is keyed by), but reads and writes go through sec.Slice at
// relative coordinates. Neighbour enumeration is clipped to sec.Slice's
// own bounds, which is what prevents a worker from ever touching another
// tile's pixels.
func tileRun[Aux any](sec *tile.Section, cond Condition[Aux], update Update[Aux], queue *Queue, aux Aux) {
	for {
		absCoord, ok := queue.Pop()
		if !ok {
			return
		}

		rx, ry := sec.Rel(absCoord.X, absCoord.Y)
		curr := pixelgrid.Pixel{Coord: absCoord, Value: sec.Slice.At(rx, ry)}

		for _, relN := range pixelgrid.Neighbours(sec.Slice, pixelgrid.Coord{X: rx, Y: ry}, pixelgrid.Eight) {
			absN, absNY := sec.Abs(relN.X, relN.Y)
			ngb := pixelgrid.Pixel{
				Coord: pixelgrid.Coord{X: absN, Y: absNY},
				Value: sec.Slice.At(relN.X, relN.Y),
			}

			if !cond(sec.Slice, curr, ngb, aux) {
				continue
			}

			v := update(sec.Slice, curr, ngb, aux)
			sec.Slice.Set(relN.X, relN.Y, v)
			queue.Push(ngb.Coord)
		}
	}
}

// collectInternalBorders gathers, for every section, the absolute
// coordinates of its borders that are not also borders of the full
// imgW x imgH image — the seed set for phase P4.
func collectInternalBorders(sections []tile.Section, imgW, imgH int) []pixelgrid.Coord {
	var out []pixelgrid.Coord
	for i := range sections {
		out = append(out, sections[i].InternalBorders(imgW, imgH)...)
	}

	return out
}
