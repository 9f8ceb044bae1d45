package mapmeta

import (
	"github.com/milk9111/mapmaker/geom"
	"github.com/milk9111/mapmaker/scene"
)

// Map is the root editable document: fixed grid/tile dimensions plus an
// ordered list of layers. Layer order is paint order; a layer's index is its
// stable identity for the editing session.
type Map struct {
	Name             string            `yaml:"name"`
	GridSize         geom.UVec2        `yaml:"grid_size"`
	TileSize         geom.UVec2        `yaml:"tile_size"`
	BackgroundLayers []BackgroundLayer `yaml:"background_layers"`
	Layers           []Layer           `yaml:"layers"`
}

// Layer is one paintable slice of a map, ordered by creation.
type Layer struct {
	Name string    `yaml:"name"`
	Kind LayerKind `yaml:"kind"`
	// Node is a weak relation to the scene node representing this layer.
	// It is set once when the layer is appended and never reassigned.
	// Runtime-only; exports carry no arena handles.
	Node scene.Entity `yaml:"-"`
}

// BackgroundLayer is a parallax image behind the playable layers. The
// editor carries these through export untouched.
type BackgroundLayer struct {
	Name  string  `yaml:"name"`
	Image string  `yaml:"image"`
	Depth float64 `yaml:"depth"`
}

// LayerKindTag names a layer kind variant.
type LayerKindTag string

const (
	LayerKindTiles       LayerKindTag = "tiles"
	LayerKindDecorations LayerKindTag = "decorations"
	LayerKindEntities    LayerKindTag = "entities"
)

// LayerKind is a tagged union: exactly one payload pointer is non-nil.
// Payloads are opaque configuration owned by the matching content system.
type LayerKind struct {
	Tiles       *TileLayerData       `yaml:"tiles,omitempty"`
	Decorations *DecorationLayerData `yaml:"decorations,omitempty"`
	Entities    *EntityLayerData     `yaml:"entities,omitempty"`
}

// TileLayerData configures a tile layer.
type TileLayerData struct {
	Tileset string `yaml:"tileset,omitempty"`
}

// DecorationLayerData configures a decoration layer.
type DecorationLayerData struct{}

// EntityLayerData configures an entity layer.
type EntityLayerData struct{}

// NewLayerKind returns the union with the tagged variant set to its default
// payload. Unknown tags fall back to tiles.
func NewLayerKind(tag LayerKindTag) LayerKind {
	switch tag {
	case LayerKindDecorations:
		return LayerKind{Decorations: &DecorationLayerData{}}
	case LayerKindEntities:
		return LayerKind{Entities: &EntityLayerData{}}
	default:
		return LayerKind{Tiles: &TileLayerData{}}
	}
}

// Tag returns which variant is set.
func (k LayerKind) Tag() LayerKindTag {
	switch {
	case k.Decorations != nil:
		return LayerKindDecorations
	case k.Entities != nil:
		return LayerKindEntities
	default:
		return LayerKindTiles
	}
}
