package scene

import "github.com/milk9111/mapmaker/geom"

// Transform is a node's local translation, depth, and scale.
type Transform struct {
	Translation geom.Vec3
	Scale       geom.Vec2
}

type visibility struct {
	visible bool
}

type childList struct {
	nodes []Entity
}

// Built-in node components. Exposed as World methods rather than handles so
// callers can't detach them.
var (
	transformComponent  = NewComponent[Transform]()
	visibilityComponent = NewComponent[visibility]()
	childrenComponent   = NewComponent[childList]()
)

// World is the scene-node arena. Nodes are referenced by Entity handles;
// typed content attaches through ComponentHandle tables.
type World struct {
	entities entityStore
	tables   map[ComponentID]componentTable
}

// NewWorld creates an empty arena.
func NewWorld() *World {
	return &World{tables: make(map[ComponentID]componentTable)}
}

// tableFor returns the typed store for a component id, creating it on first
// use. Handle ids are unique per NewComponent call, so the assertion holds.
func tableFor[T any](w *World, id ComponentID) *sparseSet[T] {
	if t, ok := w.tables[id]; ok {
		return t.(*sparseSet[T])
	}
	t := &sparseSet[T]{}
	w.tables[id] = t
	return t
}

// Spawn allocates a new node, visible, at the origin with unit scale.
func (w *World) Spawn() Entity {
	e := w.entities.create()
	id := int(e.id())
	tableFor[Transform](w, transformComponent.id).set(id, Transform{Scale: geom.Vec2{X: 1, Y: 1}})
	tableFor[visibility](w, visibilityComponent.id).set(id, visibility{visible: true})
	return e
}

// Despawn destroys a node and, recursively, its children. Handles held
// elsewhere simply go dead; nothing walks back-references.
func (w *World) Despawn(e Entity) {
	if !w.IsAlive(e) {
		return
	}
	for _, child := range w.Children(e) {
		w.Despawn(child)
	}
	id := int(e.id())
	for _, t := range w.tables {
		t.remove(id)
	}
	w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AttachChild records child under parent. A node may be attached once; the
// relation is parent-owned, children don't know their parent.
func (w *World) AttachChild(parent, child Entity) error {
	if !w.IsAlive(parent) || !w.IsAlive(child) {
		return ErrEntityNotAlive
	}
	if parent == child {
		return ErrSelfAttach
	}
	id := int(parent.id())
	table := tableFor[childList](w, childrenComponent.id)
	cl, _ := table.get(id)
	cl.nodes = append(cl.nodes, child)
	table.set(id, cl)
	return nil
}

// Children returns the child handles attached to e, in attach order.
func (w *World) Children(e Entity) []Entity {
	if !w.IsAlive(e) {
		return nil
	}
	cl, _ := tableFor[childList](w, childrenComponent.id).get(int(e.id()))
	return cl.nodes
}

// SetVisibility flips a node's visibility flag.
func (w *World) SetVisibility(e Entity, visible bool) {
	if !w.IsAlive(e) {
		return
	}
	tableFor[visibility](w, visibilityComponent.id).set(int(e.id()), visibility{visible: visible})
}

// Visible reports a node's visibility flag. Dead nodes are not visible.
func (w *World) Visible(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	v, _ := tableFor[visibility](w, visibilityComponent.id).get(int(e.id()))
	return v.visible
}

// SetLocalTransform writes a node's local translation and scale.
func (w *World) SetLocalTransform(e Entity, translation geom.Vec3, scale geom.Vec2) {
	if !w.IsAlive(e) {
		return
	}
	tableFor[Transform](w, transformComponent.id).set(int(e.id()), Transform{Translation: translation, Scale: scale})
}

// LocalTransform returns a node's local transform.
func (w *World) LocalTransform(e Entity) (Transform, bool) {
	if !w.IsAlive(e) {
		return Transform{}, false
	}
	return tableFor[Transform](w, transformComponent.id).get(int(e.id()))
}
