package iwp

import "github.com/luiz-couto/image-processing-iwp/pixelgrid"

// Run drives the sequential iterated wavefront propagation engine:
// it dequeues a coordinate, reads its current value,
// and for each of its 8-connected neighbours tests cond; whenever cond
// holds, it computes the replacement with update, writes it into g, and
// enqueues the neighbour. It terminates when queue is empty.
//
// Run does not itself guarantee termination: cond and update must form a
// well-founded progress measure (values strictly move toward a bound set
// by aux) or propagation will never drain the queue. Both Condition and
// Update see absolute coordinates — the same coordinate space g itself
// uses, so callers driving a tile's local slice must already be working
// in that slice's own frame.
//
// Complexity: O(k * transitions accepted), k = 8 (the neighbourhood size).
func Run[Aux any](g pixelgrid.Grid, cond Condition[Aux], update Update[Aux], queue *Queue, aux Aux) {
	for {
		p, ok := queue.Pop()
		if !ok {
			return
		}

		curr := pixelgrid.Pixel{Coord: p, Value: g.At(p.X, p.Y)}
		for _, nc := range pixelgrid.Neighbours(g, p, pixelgrid.Eight) {
			ngb := pixelgrid.Pixel{Coord: nc, Value: g.At(nc.X, nc.Y)}
			if !cond(g, curr, ngb, aux) {
				continue
			}

			v := update(g, curr, ngb, aux)
			g.Set(nc.X, nc.Y, v)
			queue.Push(nc)
		}
	}
}
