package reconstruction

import (
	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// seed performs the two-sweep raster/anti-raster pass (Vincent 1993)
// that primes marker in place and collects the initial active-pixel
// queue for the propagation phase.
//
//  1. Raster sweep (y ascending, x ascending): each pixel is raised to
//     min(max(marker[p], max over marker's 8-neighbours), mask[p]).
//  2. Anti-raster sweep (y descending, x descending): the same update,
//     then every neighbour q of p with marker[q] < marker[p] and
//     marker[q] < mask[q] is collected as an initial seed.
//
// Seeds are deduplicated: the same coordinate can be queued by more than
// one neighbouring pixel during the anti-raster sweep.
//
// Complexity: O(W×H) (each sweep visits every pixel once, 8 neighbour
// reads per visit).
func seed(mask, marker *pixelgrid.Image8) []pixelgrid.Coord {
	w, h := marker.Width(), marker.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			raise(mask, marker, x, y)
		}
	}

	seen := make(map[pixelgrid.Coord]struct{})
	var seeds []pixelgrid.Coord

	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			raise(mask, marker, x, y)

			p := pixelgrid.Coord{X: x, Y: y}
			pVal := marker.At(x, y)
			for _, nc := range pixelgrid.Neighbours(marker, p, pixelgrid.Eight) {
				nVal := marker.At(nc.X, nc.Y)
				if nVal < pVal && nVal < mask.At(nc.X, nc.Y) {
					if _, ok := seen[nc]; !ok {
						seen[nc] = struct{}{}
						seeds = append(seeds, nc)
					}
				}
			}
		}
	}

	return seeds
}

// raise sets marker[x,y] to min(max(marker[x,y], max over its current
// 8-neighbour values), mask[x,y]), in place.
func raise(mask, marker *pixelgrid.Image8, x, y int) {
	greatest := marker.At(x, y)
	for _, nc := range pixelgrid.Neighbours(marker, pixelgrid.Coord{X: x, Y: y}, pixelgrid.Eight) {
		if v := marker.At(nc.X, nc.Y); v > greatest {
			greatest = v
		}
	}

	if m := mask.At(x, y); greatest > m {
		greatest = m
	}
	marker.Set(x, y, greatest)
}
