// Package pixelgrid provides the 2-D coordinate and pixel-buffer primitives
// shared by the tile, iwp, reconstruction, and distance packages. It defines:
//
//   - Connectivity: Four- or eight-neighbour adjacency.
//   - Coord and Pixel: the coordinate and (coordinate, value) records
//     passed to every propagation predicate.
//   - Grid: the minimal read/write interface an image must satisfy to be
//     driven by the IWP engine.
//   - Image8 and Image32: dense, row-major concrete grids (8-bit samples
//     for reconstruction/distance-transform images, 32-bit samples for the
//     distance transform's internal Voronoi site map).
//   - Neighbours, UpperBorder, LowerBorder, LeftBorder, RightBorder:
//     deterministic coordinate enumeration used by both the engine and the
//     tile-boundary reconciliation pass.
//   - ConvertToBinary: the {0,1} binarisation utility clients call before
//     a distance transform.
//   - ConnectedComponents: a flood-fill debug/test helper for inspecting
//     foreground regions, grounded on the same union-by-BFS idea as a
//     graph connected-components pass.
//
// Complexity:
//
//   - Neighbours, InBounds: O(1).
//   - UpperBorder/LowerBorder/LeftBorder/RightBorder: O(W) or O(H).
//   - ConvertToBinary: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory O(W×H), d = 4 or 8.
//
// Errors:
//
//	ErrEmptyGrid      - input rows slice has no rows or no columns.
//	ErrNonRectangular - input rows have differing lengths.
//	ErrInvalidSample  - a binary image contains a value outside {0,1}.
package pixelgrid
