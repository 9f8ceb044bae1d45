package scene

// componentTable is the untyped view of a component store, enough for the
// world to clear a despawned entity out of every table it appears in.
type componentTable interface {
	remove(id int) bool
}

// sparseSet is typed dense storage keyed by entity id. sparse maps id-1 to a
// dense index; removal swaps the tail entry into the hole so the dense
// slices stay packed.
type sparseSet[T any] struct {
	denseIDs    []int
	denseValues []T
	sparse      []int
}

func (s *sparseSet[T]) has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

// get returns the value stored for id.
func (s *sparseSet[T]) get(id int) (T, bool) {
	if !s.has(id) {
		var zero T
		return zero, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

// set inserts or replaces the value for id.
func (s *sparseSet[T]) set(id int, v T) {
	if s == nil || id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

// remove deletes the value for id if present.
func (s *sparseSet[T]) remove(id int) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

// entities returns the dense entity id list, in storage order.
func (s *sparseSet[T]) entities() []int {
	if s == nil {
		return nil
	}
	return s.denseIDs
}
