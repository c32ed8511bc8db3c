package reconstruction

import (
	"github.com/luiz-couto/image-processing-iwp/iwp"
	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// Reconstruct computes the greyscale morphological reconstruction by
// dilation of marker under mask, rho_mask(marker), rewriting marker in
// place. mask is read-only throughout and must have the
// same dimensions as marker; marker must satisfy marker <= mask pointwise.
//
// Complexity: O(W×H) for seeding, plus O(k * transitions accepted) for
// propagation.
func Reconstruct(mask, marker *pixelgrid.Image8) error {
	if err := validate(mask, marker); err != nil {
		return err
	}

	seeds := seed(mask, marker)
	iwp.Run[*pixelgrid.Image8](marker, condition, update, iwp.NewQueue(seeds), mask)

	return nil
}

// ReconstructParallel computes the same result as Reconstruct but drives
// propagation through the tiled engine, returning a freshly
// assembled image rather than mutating marker. mask is read-only and
// shared across every tile worker.
//
// Complexity: same total work as Reconstruct, phase P2 spread across
// nTiles goroutines.
func ReconstructParallel(mask, marker *pixelgrid.Image8, nTiles int) (*pixelgrid.Image8, error) {
	if err := validate(mask, marker); err != nil {
		return nil, err
	}

	seeds := seed(mask, marker)
	result, err := iwp.RunParallel[*pixelgrid.Image8](
		marker, condition, update, seeds, mask, nTiles,
		pixelgrid.Image8Factory, pixelgrid.Image8Factory,
	)
	if err != nil {
		return nil, err
	}

	return result.(*pixelgrid.Image8), nil
}

func validate(mask, marker *pixelgrid.Image8) error {
	if mask.Width() != marker.Width() || mask.Height() != marker.Height() {
		return ErrDimensionMismatch
	}
	for y := 0; y < mask.Height(); y++ {
		for x := 0; x < mask.Width(); x++ {
			if marker.At(x, y) > mask.At(x, y) {
				return ErrMarkerExceedsMask
			}
		}
	}

	return nil
}
