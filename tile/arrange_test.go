package tile_test

import (
	"testing"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
	"github.com/luiz-couto/image-processing-iwp/tile"
)

func seqImage(w, h int) *pixelgrid.Image8 {
	img := pixelgrid.NewImage8(w, h)
	v := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, uint32(v%256))
			v++
		}
	}

	return img
}

// TestArrange_ZeroTiles verifies Arrange rejects a non-positive tile count.
func TestArrange_ZeroTiles(t *testing.T) {
	img := seqImage(4, 4)
	if _, err := tile.Arrange(img, 0, pixelgrid.Image8Factory); err != tile.ErrZeroTiles {
		t.Fatalf("Arrange(n=0) error = %v; want ErrZeroTiles", err)
	}
}

// TestArrange_RoundTrip checks that for a range of image sizes and tile
// counts, the sections returned by Arrange cover the image exactly once,
// and Assemble reproduces the original image pixelwise.
func TestArrange_RoundTrip(t *testing.T) {
	sizes := [][2]int{{6, 6}, {10, 7}, {13, 13}, {1, 1}, {17, 3}}
	counts := []int{1, 2, 3, 4, 5, 8, 12}

	for _, size := range sizes {
		w, h := size[0], size[1]
		img := seqImage(w, h)
		for _, n := range counts {
			sections, err := tile.Arrange(img, n, pixelgrid.Image8Factory)
			if err != nil {
				t.Fatalf("Arrange(%dx%d, %d) error: %v", w, h, n, err)
			}

			covered := make([]bool, w*h)
			for _, s := range sections {
				for y := 0; y < s.Height; y++ {
					for x := 0; x < s.Width; x++ {
						ax, ay := s.Abs(x, y)
						idx := ay*w + ax
						if covered[idx] {
							t.Fatalf("size %dx%d n=%d: pixel (%d,%d) covered twice", w, h, n, ax, ay)
						}
						covered[idx] = true
					}
				}
			}
			for i, c := range covered {
				if !c {
					t.Fatalf("size %dx%d n=%d: pixel index %d never covered", w, h, n, i)
				}
			}

			full, err := tile.Assemble(w, h, sections, pixelgrid.Image8Factory)
			if err != nil {
				t.Fatalf("Assemble error: %v", err)
			}
			fullImg := full.(*pixelgrid.Image8)
			if !fullImg.Equal(img) {
				t.Fatalf("size %dx%d n=%d: assembled image does not match original", w, h, n)
			}
		}
	}
}

// TestSection_CoordMapping checks Abs/Rel/InSection agree with each other.
func TestSection_CoordMapping(t *testing.T) {
	s := tile.Section{StartX: 3, StartY: 5, Width: 4, Height: 2}

	ax, ay := s.Abs(1, 1)
	if ax != 4 || ay != 6 {
		t.Fatalf("Abs(1,1) = (%d,%d); want (4,6)", ax, ay)
	}
	rx, ry := s.Rel(ax, ay)
	if rx != 1 || ry != 1 {
		t.Fatalf("Rel(4,6) = (%d,%d); want (1,1)", rx, ry)
	}

	if !s.InSection(3, 5) {
		t.Fatalf("InSection(3,5) = false; want true (top-left corner, closed start)")
	}
	if s.InSection(7, 5) {
		t.Fatalf("InSection(7,5) = true; want false (StartX+Width is exclusive)")
	}
	if s.InSection(6, 7) {
		t.Fatalf("InSection(6,7) = true; want false (StartY+Height is exclusive)")
	}
}
