// Package iwp (image-processing-iwp) is a library for Iterated Wavefront
// Propagation over 2-D raster images, and two algorithms built on top of
// it: grayscale morphological reconstruction by dilation, and Euclidean /
// city-block / chessboard distance transform via discrete Voronoi
// propagation.
//
// Everything is organized under five subpackages:
//
//	pixelgrid/      — Grid, Coord, Image8/Image32, neighbour & border enumeration
//	tile/           — deterministic tile partitioning for parallel propagation
//	iwp/            — the propagation engine itself, sequential and tiled
//	reconstruction/ — Reconstruct, ReconstructParallel
//	distance/       — Transform, TransformParallel, and the three metrics
//
// Each client algorithm follows the same shape: a seeding pass builds an
// initial active-pixel queue and any auxiliary state, then iwp.Run or
// iwp.RunParallel drains that queue until no further pixel can be raised
// (reconstruction) or claimed (distance transform).
//
// cmd/iwpdebug is a small ASCII-grid smoke-test binary built entirely on
// the public API of these packages; it is not part of the core library.
package iwp
