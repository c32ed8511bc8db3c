package reconstruction_test

import (
	"fmt"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
	"github.com/luiz-couto/image-processing-iwp/reconstruction"
)

// ExampleReconstruct grows a single interior marker pixel until it fills
// its enclosing 2x2 mask plateau, leaving the rest of the image at 0.
func ExampleReconstruct() {
	mask := pixelgrid.NewImage8(4, 4)
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			mask.Set(x, y, 1)
		}
	}

	marker := pixelgrid.NewImage8(4, 4)
	marker.Set(1, 1, 1)

	if err := reconstruction.Reconstruct(mask, marker); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(marker.Rows())

	// Output:
	// [[0 0 0 0] [0 1 1 0] [0 1 1 0] [0 0 0 0]]
}
