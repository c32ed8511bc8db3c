package pixelgrid

// ConnectedComponents groups the foreground cells of g (those with value
// >= threshold) into connected components under the given connectivity,
// components being maximal sets of equal-valued adjacent cells. It is a
// debug/test helper for inspecting seed regions and reconstruction
// plateaus, not part of the propagation engine itself.
//
// Complexity: O(W×H×d) time, O(W×H) memory, d = 4 or 8.
func ConnectedComponents(g Grid, threshold uint32, conn Connectivity) [][]Pixel {
	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	var components [][]Pixel

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			value := g.At(x, y)
			if value < threshold || visited[idx] {
				continue
			}

			queue := []Coord{{X: x, Y: y}}
			visited[idx] = true
			var comp []Pixel

			for qi := 0; qi < len(queue); qi++ {
				c := queue[qi]
				comp = append(comp, Pixel{Coord: c, Value: value})

				for _, nc := range Neighbours(g, c, conn) {
					nIdx := nc.Y*w + nc.X
					if visited[nIdx] || g.At(nc.X, nc.Y) != value {
						continue
					}
					visited[nIdx] = true
					queue = append(queue, nc)
				}
			}

			components = append(components, comp)
		}
	}

	return components
}
