// Package distance computes an integer approximation of each foreground
// pixel's distance to the nearest background pixel in a binary image, via
// discrete Voronoi propagation over the IWP engine (spec.md §4.6).
package distance

import "errors"

// Sentinel errors for distance operations.
var (
	// ErrInvalidSample indicates the input image contains a sample
	// outside {0,1}; callers must binarise with pixelgrid.ConvertToBinary
	// first.
	ErrInvalidSample = errors.New("distance: input image must be binary ({0,1})")
)
