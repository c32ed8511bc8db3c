package tile_test

import (
	"testing"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
	"github.com/luiz-couto/image-processing-iwp/tile"
)

// TestInternalBorders_CornerSection checks that a tile pinned to the
// image's top-left corner only contributes its lower and right borders
// (its upper and left edges coincide with the full image's border and are
// not internal). The lower row's first pixel sits at x=0 and the right
// column's first pixel sits at y=0; those belong to the lower and right
// strips and are expected.
func TestInternalBorders_CornerSection(t *testing.T) {
	sections, err := tile.Arrange(seqImage(6, 6), 4, pixelgrid.Image8Factory)
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}

	var corner *tile.Section
	for i := range sections {
		if sections[i].StartX == 0 && sections[i].StartY == 0 {
			corner = &sections[i]
			break
		}
	}
	if corner == nil {
		t.Fatalf("no section found at (0,0)")
	}

	borders := corner.InternalBorders(6, 6)
	lowerY := corner.StartY + corner.Height - 1
	rightX := corner.StartX + corner.Width - 1
	for _, c := range borders {
		if c.X == 0 && corner.StartX == 0 && c.Y != lowerY {
			t.Fatalf("corner section reported its left edge (x=0) as internal: %v", c)
		}
		if c.Y == 0 && corner.StartY == 0 && c.X != rightX {
			t.Fatalf("corner section reported its top edge (y=0) as internal: %v", c)
		}
	}
	if len(borders) == 0 {
		t.Fatalf("corner section reported no internal borders at all")
	}
}

// TestInternalBorders_SingleTileHasNone checks that when the whole image
// is a single tile, every edge coincides with the image border and no
// internal-border seeds are produced.
func TestInternalBorders_SingleTileHasNone(t *testing.T) {
	sections, err := tile.Arrange(seqImage(5, 5), 1, pixelgrid.Image8Factory)
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d; want 1", len(sections))
	}

	if got := sections[0].InternalBorders(5, 5); len(got) != 0 {
		t.Fatalf("InternalBorders = %v; want empty for a single full-image tile", got)
	}
}
