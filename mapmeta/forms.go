package mapmeta

// MapCreateForm is the scratch state behind the create-map dialog.
type MapCreateForm struct {
	Name   string
	Width  uint32
	Height uint32
}

// NewMapCreateForm returns the dialog defaults.
func NewMapCreateForm() MapCreateForm {
	return MapCreateForm{Width: 27, Height: 21}
}

// IsValid gates the Create button. Maps need a name and a grid bigger than
// 10 tiles on both axes.
func (f MapCreateForm) IsValid() bool {
	return f.Name != "" && f.Width > 10 && f.Height > 10
}

// LayerCreateForm is the scratch state behind the create-layer dialog.
// Layers have no name requirement; empty names are allowed.
type LayerCreateForm struct {
	Name string
	Kind LayerKindTag
}

// NewLayerCreateForm returns the dialog defaults.
func NewLayerCreateForm() LayerCreateForm {
	return LayerCreateForm{Kind: LayerKindTiles}
}
