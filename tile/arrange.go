package tile

import (
	"math"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// Arrange partitions a W x H grid into approximately n disjoint rectangular
// sections, copying the corresponding pixels out of src into each section's
// own Slice (allocated via newSlice). The returned sections cover
// [0,W) x [0,H) exactly once, with no overlap and no gaps.
//
// Algorithm (deterministic):
//  1. columns = ceil(sqrt(n))
//  2. fullRows = n / columns, orphans = n % columns
//  3. rowsTotal = fullRows, plus one more if orphans > 0
//  4. baseW = W / columns, baseH = H / rowsTotal; remainders absorbed by
//     the last tile in each row (width) and the last row (height, only
//     when there are no orphans).
//  5. If orphans > 0, an extra row of `orphans` tiles is emitted at
//     y = fullRows, each of width ceil(W/orphans) (last absorbs the
//     remainder), height baseH + (H mod rowsTotal).
//
// Returns ErrZeroTiles if n == 0.
// Complexity: O(W×H) (every pixel is copied exactly once across all
// sections).
func Arrange(src pixelgrid.Grid, n int, newSlice Factory) ([]Section, error) {
	if n <= 0 {
		return nil, ErrZeroTiles
	}

	w, h := src.Width(), src.Height()
	columns := int(math.Ceil(math.Sqrt(float64(n))))
	fullRows := n / columns
	orphans := n % columns

	rowsTotal := fullRows
	if orphans > 0 {
		rowsTotal++
	}

	baseW := w / columns
	baseH := h / rowsTotal
	wRem := w % columns
	hRem := h % rowsTotal

	sections := make([]Section, 0, n)

	for y := 0; y < fullRows; y++ {
		height := baseH
		if orphans == 0 && y == fullRows-1 {
			height += hRem
		}
		for x := 0; x < columns; x++ {
			width := baseW
			if x == columns-1 {
				width += wRem
			}
			sections = append(sections, copySection(src, x*baseW, y*baseH, width, height, newSlice))
		}
	}

	if orphans > 0 {
		y := fullRows
		height := baseH + hRem
		orphanW := int(math.Ceil(float64(w) / float64(orphans)))
		for x := 0; x < orphans; x++ {
			startX := x * orphanW
			width := orphanW
			if x == orphans-1 || startX+width > w {
				width = w - startX
			}
			sections = append(sections, copySection(src, startX, y*baseH, width, height, newSlice))
		}
	}

	return sections, nil
}

func copySection(src pixelgrid.Grid, startX, startY, width, height int, newSlice Factory) Section {
	slice := newSlice(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			slice.Set(x, y, src.At(startX+x, startY+y))
		}
	}

	return Section{StartX: startX, StartY: startY, Width: width, Height: height, Slice: slice}
}

// Assemble copies every section's slice back into a fresh width x height
// grid allocated via newFull, at each section's absolute position. It is
// the inverse of Arrange: Assemble(w, h, Arrange(img, n)) reproduces img
// pixelwise.
//
// Returns ErrDimensionMismatch if any section's bounds fall outside
// [0,width) x [0,height).
// Complexity: O(W×H).
func Assemble(width, height int, sections []Section, newFull Factory) (pixelgrid.Grid, error) {
	out := newFull(width, height)
	for _, s := range sections {
		if s.StartX < 0 || s.StartY < 0 || s.StartX+s.Width > width || s.StartY+s.Height > height {
			return nil, ErrDimensionMismatch
		}
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				ax, ay := s.Abs(x, y)
				out.Set(ax, ay, s.Slice.At(x, y))
			}
		}
	}

	return out, nil
}
