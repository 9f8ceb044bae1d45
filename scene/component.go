package scene

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("scene: entity not alive")
	ErrSelfAttach     = errors.New("scene: cannot attach entity to itself")
)

// ComponentID identifies a registered component type.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle is a typed key for attaching arbitrary content to a node.
// Handles are created once at package init and shared by all worlds.
type ComponentHandle[T any] struct {
	id ComponentID
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}

// Add attaches (or replaces) a component value on a live entity.
func Add[T any](w *World, e Entity, h ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	tableFor[T](w, h.id).set(int(e.id()), value)
	return nil
}

// Get returns the component value for a live entity.
func Get[T any](w *World, e Entity, h ComponentHandle[T]) (T, bool) {
	if w == nil || !w.IsAlive(e) {
		var zero T
		return zero, false
	}
	return tableFor[T](w, h.id).get(int(e.id()))
}

// Has reports whether a live entity carries the component.
func Has[T any](w *World, e Entity, h ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return tableFor[T](w, h.id).has(int(e.id()))
}

// Remove detaches the component from the entity, reporting whether it was
// present.
func Remove[T any](w *World, e Entity, h ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return tableFor[T](w, h.id).remove(int(e.id()))
}

// Entities returns every live entity carrying the component, in storage
// order.
func Entities[T any](w *World, h ComponentHandle[T]) []Entity {
	if w == nil {
		return nil
	}
	ids := tableFor[T](w, h.id).entities()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		e := makeEntity(entityID(id), w.entities.gen[id-1])
		if w.IsAlive(e) {
			out = append(out, e)
		}
	}
	return out
}
