package tile_test

import (
	"fmt"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
	"github.com/luiz-couto/image-processing-iwp/tile"
)

// ExampleArrange demonstrates partitioning a 4x4 image into four tiles and
// reassembling them back into the original image.
func ExampleArrange() {
	img := pixelgrid.NewImage8(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, uint32(y*4+x))
		}
	}

	sections, err := tile.Arrange(img, 4, pixelgrid.Image8Factory)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tiles:", len(sections))

	full, err := tile.Assemble(4, 4, sections, pixelgrid.Image8Factory)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(full.(*pixelgrid.Image8).Rows())

	// Output:
	// tiles: 4
	// [[0 1 2 3] [4 5 6 7] [8 9 10 11] [12 13 14 15]]
}
