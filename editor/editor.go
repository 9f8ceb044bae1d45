package editor

import (
	"errors"

	"github.com/milk9111/mapmaker/geom"
	"github.com/milk9111/mapmaker/mapmeta"
	"github.com/milk9111/mapmaker/scene"
)

var (
	ErrNoMap       = errors.New("editor: no map open")
	ErrMapExists   = errors.New("editor: a map already exists")
	ErrInvalidForm = errors.New("editor: form is not valid")
)

// Maps are created with a fixed tile size; grids are never resized after
// creation.
const (
	tileWidth  = 10
	tileHeight = 10
)

// Editor owns one editing session: the scene arena, the deferred command
// buffer, the session UI state, the camera, and at most one open map.
//
// Structural changes (creating the map, creating layers) never apply
// mid-frame; they are deferred onto the command buffer and run by EndFrame
// after the UI traversal has finished reading the scene.
type Editor struct {
	World    *scene.World
	Commands *scene.CommandBuffer
	Session  *Session
	Camera   *Camera

	doc *mapmeta.Map
	// mapPending is set between enqueueing a map create and its flush, so
	// the existence checks hold for commands still in flight.
	mapPending bool
	root       scene.Entity
	gridNode   scene.Entity
}

func New() *Editor {
	return &Editor{
		World:    scene.NewWorld(),
		Commands: &scene.CommandBuffer{},
		Session:  NewSession(),
		Camera:   NewCamera(),
	}
}

// EnterEditing starts a fresh session and recenters the camera.
func (ed *Editor) EnterEditing() {
	ed.Session = NewSession()
	ed.Camera.Reset()
}

// ExitEditing clears the camera viewport override and hides the grid
// overlay. The open map stays; re-entering resumes editing it.
func (ed *Editor) ExitEditing() {
	ed.Camera.ClearViewport()
	for _, e := range scene.Entities(ed.World, GridPreviewComponent) {
		ed.World.SetVisibility(e, false)
	}
}

// Map returns the open document, or nil.
func (ed *Editor) Map() *mapmeta.Map {
	return ed.doc
}

// HasMap reports whether a document is open.
func (ed *Editor) HasMap() bool {
	return ed.doc != nil
}

// Root returns the map's root scene node.
func (ed *Editor) Root() scene.Entity {
	return ed.root
}

// GridNode returns the grid-preview overlay node.
func (ed *Editor) GridNode() scene.Entity {
	return ed.gridNode
}

// CreateMap defers creation of a new map document and its scene nodes. The
// UI disables the confirm affordance for invalid forms; the check here is
// defensive.
func (ed *Editor) CreateMap(form mapmeta.MapCreateForm) error {
	if ed.doc != nil || ed.mapPending {
		return ErrMapExists
	}
	if !form.IsValid() {
		return ErrInvalidForm
	}

	ed.mapPending = true
	ed.Commands.Defer(func(w *scene.World) {
		gridSize := geom.UVec2{X: form.Width, Y: form.Height}
		tileSize := geom.UVec2{X: tileWidth, Y: tileHeight}

		// Root node centered so the map's middle sits at the world origin.
		root := w.Spawn()
		w.SetLocalTransform(root, geom.Vec3{
			X: -float64(gridSize.X*tileSize.X) / 2,
			Y: -float64(gridSize.Y*tileSize.Y) / 2,
		}, geom.Vec2{X: 1, Y: 1})

		grid := w.Spawn()
		scene.Add(w, grid, GridPreviewComponent, GridPreview{
			Rects: mapmeta.Grid{GridSize: gridSize, TileSize: tileSize}.Rects(),
		})
		w.SetVisibility(grid, ed.Session.ShowGrid)
		w.AttachChild(root, grid)

		ed.doc = &mapmeta.Map{
			Name:     form.Name,
			GridSize: gridSize,
			TileSize: tileSize,
		}
		ed.root = root
		ed.gridNode = grid
		ed.mapPending = false
	})
	return nil
}

// CreateLayer defers appending a layer to the open map. The new layer's
// depth is its index; tiles layers get an empty tile grid and become
// children of the map root. A map create still pending in this frame counts
// as open: commands apply in order, so the document exists by the time the
// layer command runs.
func (ed *Editor) CreateLayer(form mapmeta.LayerCreateForm) error {
	if ed.doc == nil && !ed.mapPending {
		return ErrNoMap
	}

	ed.Commands.Defer(func(w *scene.World) {
		doc := ed.doc
		idx := len(doc.Layers)
		node := w.Spawn()
		w.SetLocalTransform(node, geom.Vec3{Z: float64(idx)}, geom.Vec2{X: 1, Y: 1})

		kind := mapmeta.NewLayerKind(form.Kind)
		doc.Layers = append(doc.Layers, mapmeta.Layer{
			Name: form.Name,
			Kind: kind,
			Node: node,
		})

		if kind.Tiles != nil {
			scene.Add(w, node, TileStorageComponent, NewTileStorage(doc.GridSize))
			w.AttachChild(ed.root, node)
		}
	})
	return nil
}

// ConfirmMapCreate runs the map-create dialog's confirm action: mutate,
// then close and reset the form.
func (ed *Editor) ConfirmMapCreate() error {
	err := ed.CreateMap(ed.Session.MapForm)
	ed.Session.CloseMapCreate()
	return err
}

// ConfirmLayerCreate runs the layer-create dialog's confirm action.
func (ed *Editor) ConfirmLayerCreate() error {
	err := ed.CreateLayer(ed.Session.LayerForm)
	ed.Session.CloseLayerCreate()
	return err
}

// ExportYAML serializes the open map. The affordance is only enabled when a
// map exists; the error is defensive.
func (ed *Editor) ExportYAML() (string, error) {
	if ed.doc == nil {
		return "", ErrNoMap
	}
	return mapmeta.ExportYAML(ed.doc)
}

// EndFrame applies deferred structural mutations, then syncs the grid
// overlay's visibility with the session toggle. Call once per frame after
// the UI traversal. Returns how many commands applied.
func (ed *Editor) EndFrame() int {
	applied := ed.Commands.Flush(ed.World)
	for _, e := range scene.Entities(ed.World, GridPreviewComponent) {
		ed.World.SetVisibility(e, ed.Session.ShowGrid)
	}
	return applied
}
