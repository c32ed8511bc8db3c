package tile

import "github.com/luiz-couto/image-processing-iwp/pixelgrid"

// InternalBorders returns, in absolute coordinates, every pixel on a
// border of sec that is not also a border of the full imgW x imgH image.
// This is the seed set for phase P4's border-reconciliation pass:
// each internal edge of the tile layout is a place a
// cross-tile dependency could have been missed during concurrent
// tile-local propagation.
//
// A section with zero width or zero height has no border pixels and
// contributes nothing.
//
// Complexity: O(Width + Height) per section.
func (s *Section) InternalBorders(imgW, imgH int) []pixelgrid.Coord {
	if s.Width == 0 || s.Height == 0 {
		return nil
	}

	var out []pixelgrid.Coord

	if s.StartY > 0 {
		for _, c := range pixelgrid.UpperBorder(s.Slice) {
			ax, ay := s.Abs(c.X, c.Y)
			out = append(out, pixelgrid.Coord{X: ax, Y: ay})
		}
	}
	if s.StartY+s.Height < imgH {
		for _, c := range pixelgrid.LowerBorder(s.Slice) {
			ax, ay := s.Abs(c.X, c.Y)
			out = append(out, pixelgrid.Coord{X: ax, Y: ay})
		}
	}
	if s.StartX > 0 {
		for _, c := range pixelgrid.LeftBorder(s.Slice) {
			ax, ay := s.Abs(c.X, c.Y)
			out = append(out, pixelgrid.Coord{X: ax, Y: ay})
		}
	}
	if s.StartX+s.Width < imgW {
		for _, c := range pixelgrid.RightBorder(s.Slice) {
			ax, ay := s.Abs(c.X, c.Y)
			out = append(out, pixelgrid.Coord{X: ax, Y: ay})
		}
	}

	return out
}
