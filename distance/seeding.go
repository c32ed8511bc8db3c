package distance

import "github.com/luiz-couto/image-processing-iwp/pixelgrid"

// sites builds the initial Voronoi site map for bin: every background pixel
// (value 0) becomes its own site, encoded as its row-major linear index
// (y*width+x); every foreground pixel (value 1) starts at pixelgrid.InfSite,
// meaning "no site claimed yet". The returned seeds are exactly the
// background pixels that border at least one foreground pixel under 8-
// connectivity — the wavefront that will carry sites into the foreground
// (spec.md §4.6).
func sites(bin *pixelgrid.Image8) (*pixelgrid.Image32, []pixelgrid.Coord) {
	w, h := bin.Width(), bin.Height()
	site := pixelgrid.NewImage32(w, h)
	var seeds []pixelgrid.Coord

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if bin.At(x, y) != 0 {
				site.Set(x, y, pixelgrid.InfSite)
				continue
			}

			site.Set(x, y, uint32(y*w+x))
			if hasForegroundNeighbour(bin, x, y) {
				seeds = append(seeds, pixelgrid.Coord{X: x, Y: y})
			}
		}
	}

	return site, seeds
}

func hasForegroundNeighbour(bin *pixelgrid.Image8, x, y int) bool {
	for _, n := range pixelgrid.Neighbours(bin, pixelgrid.Coord{X: x, Y: y}, pixelgrid.Eight) {
		if bin.At(n.X, n.Y) != 0 {
			return true
		}
	}

	return false
}
