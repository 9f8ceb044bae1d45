package mapmeta

import (
	"testing"

	"github.com/milk9111/mapmaker/geom"
)

func TestGridRects(t *testing.T) {
	cases := []struct {
		name     string
		gridSize geom.UVec2
		tileSize geom.UVec2
		want     int
	}{
		{"three_by_two", geom.UVec2{X: 3, Y: 2}, geom.UVec2{X: 10, Y: 10}, 6},
		{"single_cell", geom.UVec2{X: 1, Y: 1}, geom.UVec2{X: 16, Y: 8}, 1},
		{"empty", geom.UVec2{}, geom.UVec2{X: 10, Y: 10}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := Grid{GridSize: c.gridSize, TileSize: c.tileSize}
			rects := g.Rects()
			if len(rects) != c.want {
				t.Fatalf("expected %d rects, got %d", c.want, len(rects))
			}

			tw := float64(c.tileSize.X)
			th := float64(c.tileSize.Y)
			seen := make(map[geom.Rect]struct{}, len(rects))
			for _, r := range rects {
				if r.Width != tw || r.Height != th {
					t.Fatalf("cell %v does not match tile size %vx%v", r, tw, th)
				}
				if r.X < 0 || r.Y < 0 ||
					r.X+r.Width > float64(c.gridSize.X)*tw ||
					r.Y+r.Height > float64(c.gridSize.Y)*th {
					t.Fatalf("cell %v escapes the grid bounds", r)
				}
				if _, dup := seen[r]; dup {
					t.Fatalf("duplicate cell %v", r)
				}
				seen[r] = struct{}{}
			}
		})
	}
}

func TestGridRectsColumnMajor(t *testing.T) {
	g := Grid{GridSize: geom.UVec2{X: 2, Y: 3}, TileSize: geom.UVec2{X: 10, Y: 10}}
	rects := g.Rects()
	// First column fills before x advances.
	want := []geom.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 10, Width: 10, Height: 10},
		{X: 0, Y: 20, Width: 10, Height: 10},
		{X: 10, Y: 0, Width: 10, Height: 10},
	}
	for i, w := range want {
		if rects[i] != w {
			t.Fatalf("rect %d: expected %v, got %v", i, w, rects[i])
		}
	}
}
