package distance

import "github.com/luiz-couto/image-processing-iwp/pixelgrid"

// voronoi bundles the read-only state a propagation step needs: the metric
// ruling which site is "closer", and the image width needed to decode a
// linear site index back into a coordinate.
type voronoi struct {
	metric Metric
	width  int
}

// condition accepts propagating curr's site into ngb when curr's site is
// strictly closer to ngb's position (under aux.metric) than ngb's current
// site — including when ngb has not claimed a site yet (pixelgrid.InfSite
// decodes to a point no real metric call can beat).
func condition(_ pixelgrid.Grid, curr, ngb pixelgrid.Pixel, aux *voronoi) bool {
	ngbPos := pixelgrid.Coord{X: ngb.X, Y: ngb.Y}
	currSite := decode(aux.width, curr.Value)
	ngbSite := decode(aux.width, ngb.Value)

	return aux.metric(ngbPos, currSite) < aux.metric(ngbPos, ngbSite)
}

// update propagates curr's claimed site index onto ngb unchanged; the
// actual distance is only computed once, at synthesis time.
func update(_ pixelgrid.Grid, curr, _ pixelgrid.Pixel, _ *voronoi) uint32 {
	return curr.Value
}
