// Package distance computes distance transforms over binary images by
// discrete Voronoi propagation (spec.md §4.6): Transform and
// TransformParallel grow a site map outward from background seeds until
// every foreground pixel has claimed its nearest background site, then
// synthesize a distance image from the chosen Metric.
//
// Complexity:
//
//   - Transform: O(W×H) seeding + O(k * transitions accepted)
//     propagation, k = 8.
//   - TransformParallel: same total work, phase P2 spread across nTiles
//     goroutines.
//
// Errors:
//
//	ErrInvalidSample - bin contains a sample outside {0,1}.
package distance
