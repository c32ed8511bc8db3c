package distance

import (
	"math"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// Metric computes an integer distance between two pixel coordinates. It is
// modeled the way builder.WeightFn models pluggable edge-weight
// distributions: a named function type with three concrete implementations,
// so a metric can be passed around and table-driven in tests rather than
// being a bare anonymous func.
//
// Metric laws (spec.md §8): Metric(p,p) == 0; Metric(p,q) == Metric(q,p);
// CityBlock(p,q) >= Chessboard(p,q); Euclidean(p,q) is between the two
// (in exact arithmetic; integer rounding can perturb this slightly).
type Metric func(p, q pixelgrid.Coord) uint32

// Euclidean returns the rounded-to-nearest-integer Euclidean (L2) distance.
func Euclidean(p, q pixelgrid.Coord) uint32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)

	return uint32(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// CityBlock returns the L1 (Manhattan) distance.
func CityBlock(p, q pixelgrid.Coord) uint32 {
	return uint32(absInt(p.X-q.X) + absInt(p.Y-q.Y))
}

// Chessboard returns the L-infinity (Chebyshev) distance.
func Chessboard(p, q pixelgrid.Coord) uint32 {
	dx, dy := absInt(p.X-q.X), absInt(p.Y-q.Y)
	if dx > dy {
		return uint32(dx)
	}

	return uint32(dy)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// decode turns a linear Voronoi site index (y*W+x) back into a coordinate.
// pixelgrid.InfSite decodes to a sentinel coordinate far enough outside any
// real image that every metric call against it returns a value no real
// pixel could produce, so a site that is still InfSite always loses a
// propagation-condition comparison against a real site.
func decode(width int, site uint32) pixelgrid.Coord {
	if site == pixelgrid.InfSite {
		return pixelgrid.Coord{X: math.MaxInt32 / 2, Y: math.MaxInt32 / 2}
	}

	return pixelgrid.Coord{X: int(site) % width, Y: int(site) / width}
}
