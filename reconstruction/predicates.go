package reconstruction

import "github.com/luiz-couto/image-processing-iwp/pixelgrid"

// condition is the propagation predicate: a neighbour
// is eligible for raising iff it is currently lower than curr and has not
// yet reached its mask-imposed ceiling. mask is the auxiliary payload,
// shared read-only across every tile worker.
func condition(_ pixelgrid.Grid, curr, ngb pixelgrid.Pixel, mask *pixelgrid.Image8) bool {
	maskAtNgb := mask.At(ngb.X, ngb.Y)

	return ngb.Value < curr.Value && maskAtNgb != ngb.Value
}

// update returns the new value to write at ngb: curr's value clipped to
// ngb's own mask ceiling, so marker never exceeds mask at any pixel.
func update(_ pixelgrid.Grid, curr, ngb pixelgrid.Pixel, mask *pixelgrid.Image8) uint32 {
	maskAtNgb := mask.At(ngb.X, ngb.Y)
	if curr.Value < maskAtNgb {
		return curr.Value
	}

	return maskAtNgb
}
