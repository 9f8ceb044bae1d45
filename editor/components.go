package editor

import (
	"github.com/milk9111/mapmaker/geom"
	"github.com/milk9111/mapmaker/scene"
)

// GridPreview marks the node that renders the map's cell outline overlay
// and carries the precomputed outlines.
type GridPreview struct {
	Rects []geom.Rect
}

var GridPreviewComponent = scene.NewComponent[GridPreview]()

// TileStorage is the tile grid owned by a tiles layer's scene node, sized
// to the map's grid. Cells hold tile entity handles; zero means empty.
type TileStorage struct {
	Size  geom.UVec2
	Tiles []scene.Entity
}

var TileStorageComponent = scene.NewComponent[TileStorage]()

// NewTileStorage returns an empty grid of the given size.
func NewTileStorage(size geom.UVec2) TileStorage {
	return TileStorage{
		Size:  size,
		Tiles: make([]scene.Entity, int(size.X)*int(size.Y)),
	}
}

// At returns the tile entity at (x, y), or zero when empty or out of range.
func (t TileStorage) At(x, y uint32) scene.Entity {
	if x >= t.Size.X || y >= t.Size.Y {
		return 0
	}
	return t.Tiles[int(y)*int(t.Size.X)+int(x)]
}

// Set writes the tile entity at (x, y). Out-of-range writes are dropped.
func (t TileStorage) Set(x, y uint32, e scene.Entity) {
	if x >= t.Size.X || y >= t.Size.Y {
		return
	}
	t.Tiles[int(y)*int(t.Size.X)+int(x)] = e
}
