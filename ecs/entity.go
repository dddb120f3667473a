package ecs

import "fmt"

// Entity is a handle: the low 32 bits hold a 1-based slot and the high 32
// bits the slot's generation. Destroying an entity bumps the generation, so
// old handles stop resolving when the slot is reused.
type Entity uint64

const slotBits = 32

func packEntity(slot, gen uint32) Entity {
	return Entity(uint64(gen)<<slotBits | uint64(slot))
}

func (e Entity) id() uint32 { return uint32(e) }

func (e Entity) generation() uint32 { return uint32(uint64(e) >> slotBits) }

// String prints the slot and generation, e.g. "7v2".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() > 0
}

// entityStore hands out slots and recycles freed ones last-in first-out.
type entityStore struct {
	gens  []uint32
	alive []bool
	free  []uint32
}

func (s *entityStore) create() Entity {
	var slot uint32
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		slot = uint32(len(s.gens))
	}
	s.alive[slot-1] = true
	return packEntity(slot, s.gens[slot-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	i := e.id() - 1
	s.alive[i] = false
	s.gens[i]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	slot := e.id()
	if slot == 0 || int(slot) > len(s.gens) {
		return false
	}
	return s.alive[slot-1] && s.gens[slot-1] == e.generation()
}

// current returns the live handle occupying slot id.
func (s *entityStore) current(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gens) || !s.alive[id-1] {
		return 0, false
	}
	return packEntity(uint32(id), s.gens[id-1]), true
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i := range s.gens {
		if e, ok := s.current(i + 1); ok {
			out = append(out, e)
		}
	}
	return out
}
