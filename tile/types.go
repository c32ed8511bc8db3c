// Package tile partitions a pixelgrid.Grid into a rectangular layout of
// disjoint sections, assembles sections back into a full grid, and maps
// coordinates between a section's local frame and the image's absolute
// frame. It is the data-parallel substrate the iwp package's parallel
// engine tiles work over.
package tile

import (
	"errors"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// Sentinel errors for tile operations.
var (
	// ErrZeroTiles indicates a caller asked for zero tiles.
	ErrZeroTiles = errors.New("tile: number of tiles must be at least 1")
	// ErrDimensionMismatch indicates Assemble was given a section whose
	// bounds fall outside the requested image dimensions.
	ErrDimensionMismatch = errors.New("tile: section bounds do not match requested image dimensions")
)

// Factory allocates a fresh, zero-valued pixelgrid.Grid of the given size.
// Arrange and Assemble use it so they stay agnostic of the concrete grid
// type (pixelgrid.Image8 for reconstruction, pixelgrid.Image32 for the
// distance transform's Voronoi site map).
type Factory func(width, height int) pixelgrid.Grid

// Section is a rectangular, disjoint sub-region of a larger image: an
// owned copy of the source pixels in [StartX, StartX+Width) x
// [StartY, StartY+Height), together with the offset needed to translate
// between the section's local coordinates and the source image's
// absolute coordinates.
type Section struct {
	StartX, StartY int
	Width, Height  int
	Slice          pixelgrid.Grid
}

// Abs maps a coordinate local to the section into the absolute frame of
// the image the section was cut from.
func (s *Section) Abs(x, y int) (int, int) {
	return x + s.StartX, y + s.StartY
}

// Rel maps an absolute coordinate into the section's local frame. The
// result is only meaningful when InSection(ax, ay) holds.
func (s *Section) Rel(ax, ay int) (int, int) {
	return ax - s.StartX, ay - s.StartY
}

// InSection reports whether the absolute coordinate (x,y) lies within the
// section's half-open bounds. Spec note: the historical reference source
// used closed intervals here, an off-by-one bug; this implementation uses
// the corrected half-open convention throughout.
func (s *Section) InSection(x, y int) bool {
	return x >= s.StartX && x < s.StartX+s.Width &&
		y >= s.StartY && y < s.StartY+s.Height
}
