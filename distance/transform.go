package distance

import (
	"github.com/luiz-couto/image-processing-iwp/iwp"
	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// Transform computes the distance transform of bin (spec.md §4.6): for
// every foreground pixel, the distance under metric to the nearest
// background pixel. bin must already be binarised to {0,1}
// (pixelgrid.ConvertToBinary). Background pixels map to 0.
//
// Complexity: O(W×H) seeding + O(k * transitions accepted) propagation,
// k = 8.
func Transform(bin *pixelgrid.Image8, metric Metric) (*pixelgrid.Image8, error) {
	if err := validate(bin); err != nil {
		return nil, err
	}

	site, seeds := sites(bin)
	aux := &voronoi{metric: metric, width: bin.Width()}
	iwp.Run[*voronoi](site, condition, update, iwp.NewQueue(seeds), aux)

	return synthesize(site, aux), nil
}

// TransformParallel computes the same result as Transform but drives
// propagation through the tiled engine (spec.md §4.4).
//
// Complexity: same total work as Transform, phase P2 spread across nTiles
// goroutines.
func TransformParallel(bin *pixelgrid.Image8, metric Metric, nTiles int) (*pixelgrid.Image8, error) {
	if err := validate(bin); err != nil {
		return nil, err
	}

	site, seeds := sites(bin)
	aux := &voronoi{metric: metric, width: bin.Width()}
	result, err := iwp.RunParallel[*voronoi](
		site, condition, update, seeds, aux, nTiles,
		pixelgrid.Image32Factory, pixelgrid.Image32Factory,
	)
	if err != nil {
		return nil, err
	}

	return synthesize(result.(*pixelgrid.Image32), aux), nil
}

// synthesize reads each pixel's final claimed site out of site and turns it
// into a distance sample: D[p] = metric(p, decode(site[p])).
func synthesize(site *pixelgrid.Image32, aux *voronoi) *pixelgrid.Image8 {
	w, h := site.Width(), site.Height()
	out := pixelgrid.NewImage8(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := pixelgrid.Coord{X: x, Y: y}
			d := aux.metric(p, decode(aux.width, site.At(x, y)))
			if d > 255 {
				d = 255
			}
			out.Set(x, y, d)
		}
	}

	return out
}

func validate(bin *pixelgrid.Image8) error {
	for _, v := range bin.Pix {
		if v != 0 && v != 1 {
			return ErrInvalidSample
		}
	}

	return nil
}
