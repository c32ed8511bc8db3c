// Package tile partitions a pixelgrid.Grid into disjoint rectangular
// Sections, copies them back together with Assemble, and maps coordinates
// between a section's local frame and the source image's absolute frame.
// It underlies the iwp package's parallel engine: each worker in phase P2
// owns exactly one Section, and phase P4 reconciles the seams Arrange
// introduces using InternalBorders.
//
// Complexity:
//
//   - Arrange, Assemble: O(W×H).
//   - Abs, Rel, InSection: O(1).
//   - InternalBorders: O(Width + Height) per section.
//
// Errors:
//
//	ErrZeroTiles         - n <= 0 passed to Arrange.
//	ErrDimensionMismatch - a section's bounds fall outside the requested
//	                       image dimensions passed to Assemble.
package tile
