// Package reconstruction computes grayscale morphological reconstruction
// by dilation: Reconstruct and ReconstructParallel grow a
// marker image upward, in place or into a fresh result, until it reaches
// the greatest image bounded above by mask that shares marker's regional
// maxima — rho_mask(marker), in Vincent 1993's notation.
//
// Complexity:
//
//   - Reconstruct: O(W×H) seeding + O(k * transitions accepted)
//     propagation, k = 8.
//   - ReconstructParallel: same total work, phase P2 spread across
//     nTiles goroutines.
//
// Errors:
//
//	ErrDimensionMismatch - mask and marker have different dimensions.
//	ErrMarkerExceedsMask - marker[p] > mask[p] for some pixel p.
package reconstruction
