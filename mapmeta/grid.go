package mapmeta

import "github.com/milk9111/mapmaker/geom"

// Grid previews a map's cell layout. Purely a function of its two sizes;
// recomputed wholesale when a map is created, never patched.
type Grid struct {
	GridSize geom.UVec2
	TileSize geom.UVec2
}

// Rects returns the outline rectangle of every cell, column-major with
// consistent winding, tiling [0, w*tw] x [0, h*th] with no gaps or overlaps.
func (g Grid) Rects() []geom.Rect {
	out := make([]geom.Rect, 0, int(g.GridSize.X)*int(g.GridSize.Y))
	tw := float64(g.TileSize.X)
	th := float64(g.TileSize.Y)
	for x := uint32(0); x < g.GridSize.X; x++ {
		for y := uint32(0); y < g.GridSize.Y; y++ {
			out = append(out, geom.Rect{
				X:      float64(x) * tw,
				Y:      float64(y) * th,
				Width:  tw,
				Height: th,
			})
		}
	}
	return out
}
