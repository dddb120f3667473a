package ecs

// SparseSet maps entity ids to one kind of component. Dense slices keep
// insertion order until a removal moves the last entry into the hole.
type SparseSet struct {
	ids    []int
	values []any
	index  []int // id-1 -> position in ids, or -1
}

func (s *SparseSet) slot(id int) (int, bool) {
	if s == nil || id <= 0 || id > len(s.index) {
		return 0, false
	}
	i := s.index[id-1]
	if i < 0 || i >= len(s.ids) || s.ids[i] != id {
		return 0, false
	}
	return i, true
}

func (s *SparseSet) Has(id int) bool {
	_, ok := s.slot(id)
	return ok
}

// Get returns the component for id, or nil.
func (s *SparseSet) Get(id int) any {
	i, ok := s.slot(id)
	if !ok {
		return nil
	}
	return s.values[i]
}

// Set inserts or replaces the component for id.
func (s *SparseSet) Set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	if i, ok := s.slot(id); ok {
		s.values[i] = v
		return
	}
	for len(s.index) < id {
		s.index = append(s.index, -1)
	}
	s.index[id-1] = len(s.ids)
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
}

// Remove deletes the component for id if present.
func (s *SparseSet) Remove(id int) {
	i, ok := s.slot(id)
	if !ok {
		return
	}
	last := len(s.ids) - 1
	moved := s.ids[last]
	s.ids[i], s.values[i] = moved, s.values[last]
	s.index[moved-1] = i
	s.values[last] = nil
	s.ids, s.values = s.ids[:last], s.values[:last]
	s.index[id-1] = -1
}

// Len is the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Entities returns the dense id list. Callers must not modify it.
func (s *SparseSet) Entities() []int {
	if s == nil {
		return nil
	}
	return s.ids
}

// Intersect returns ids present in both sets, walking the smaller one.
func (s *SparseSet) Intersect(other *SparseSet) []int {
	if s == nil || other == nil {
		return nil
	}
	a, b := s, other
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]int, 0, a.Len())
	for _, id := range a.ids {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
