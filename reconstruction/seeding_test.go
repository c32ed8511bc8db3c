package reconstruction

import (
	"sort"
	"testing"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// twoSquareMask builds the 6x6 two-square fixture from the originating
// project's test suite (examples.rs::_gen_example_img): a 2x2 foreground
// plateau at (1,1)-(2,2) and a second at (3,3)-(4,4), diagonally adjacent
// to the first under Eight connectivity.
func twoSquareMask() *pixelgrid.Image8 {
	img := pixelgrid.NewImage8(6, 6)
	img.Set(1, 1, 1)
	img.Set(2, 1, 1)
	img.Set(1, 2, 1)
	img.Set(2, 2, 1)
	img.Set(3, 3, 1)
	img.Set(4, 3, 1)
	img.Set(3, 4, 1)
	img.Set(4, 4, 1)

	return img
}

func sortCoords(cs []pixelgrid.Coord) []pixelgrid.Coord {
	out := make([]pixelgrid.Coord, len(cs))
	copy(out, cs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// TestSeed_SmallMarker is spec.md §8 scenario 2: seeding a marker that is
// all-zero except a single pixel at (4,4) against twoSquareMask must
// collect exactly {(1,1),(2,1),(1,2),(2,2)} — the second plateau's raster
// sweep reaches (4,4) forward from nothing, but the anti-raster sweep
// carries its value back across the diagonal gap into the first plateau,
// and it is precisely those four first-plateau pixels that get enqueued.
func TestSeed_SmallMarker(t *testing.T) {
	mask := twoSquareMask()
	marker := pixelgrid.NewImage8(6, 6)
	marker.Set(4, 4, 1)

	got := sortCoords(seed(mask, marker))
	want := sortCoords([]pixelgrid.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}})

	if len(got) != len(want) {
		t.Fatalf("seed() = %v (len %d); want %v (len %d)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("seed() = %v; want %v", got, want)
		}
	}
}
