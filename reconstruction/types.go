// Package reconstruction computes grayscale morphological reconstruction
// by dilation: given a mask image and a marker image with
// marker <= mask pointwise, it grows marker upward, in place, until it
// reaches the greyscale reconstruction rho_mask(marker) — the largest
// image bounded above by mask that agrees with marker's regional maxima.
package reconstruction

import "errors"

// Sentinel errors for reconstruction operations.
var (
	// ErrDimensionMismatch indicates mask and marker have different
	// width or height.
	ErrDimensionMismatch = errors.New("reconstruction: mask and marker dimensions must match")
	// ErrMarkerExceedsMask indicates some marker pixel exceeds the
	// corresponding mask pixel, violating the marker <= mask precondition.
	ErrMarkerExceedsMask = errors.New("reconstruction: marker must be <= mask at every pixel")
)
