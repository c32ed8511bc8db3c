package iwp_test

import (
	"fmt"

	"github.com/luiz-couto/image-processing-iwp/iwp"
	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// ExampleRun demonstrates the sequential engine with a minimal "raise to
// bound" propagation: a single seed already at bound spreads that value
// outward until every reachable pixel matches it.
func ExampleRun() {
	img := pixelgrid.NewImage8(3, 3)
	img.Set(0, 0, 5)

	cond := func(_ pixelgrid.Grid, curr, ngb pixelgrid.Pixel, bound uint32) bool {
		return ngb.Value < bound && curr.Value >= bound
	}
	update := func(_ pixelgrid.Grid, _, _ pixelgrid.Pixel, bound uint32) uint32 {
		return bound
	}

	queue := iwp.NewQueue([]pixelgrid.Coord{{X: 0, Y: 0}})
	iwp.Run[uint32](img, cond, update, queue, 5)

	fmt.Println(img.Rows())

	// Output:
	// [[5 5 5] [5 5 5] [5 5 5]]
}

// ExampleQueue demonstrates the FIFO discipline Run and RunParallel rely
// on: coordinates drain in the order they were pushed.
func ExampleQueue() {
	q := iwp.NewQueue([]pixelgrid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}})
	q.Push(pixelgrid.Coord{X: 3, Y: 3})

	var drained []pixelgrid.Coord
	for q.Len() > 0 {
		c, _ := q.Pop()
		drained = append(drained, c)
	}
	fmt.Println(drained)

	// Output:
	// [{1 1} {2 2} {3 3}]
}
