package component

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID names one component store. IDs start at 1.
type ComponentID uint32

var registry struct {
	sync.Mutex
	names []string
}

// String returns the Go type the id was registered for.
func (id ComponentID) String() string {
	registry.Lock()
	defer registry.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return fmt.Sprintf("component#%d", uint32(id))
	}
	return registry.names[id-1]
}

// ComponentKind is the typed key for components of type T. The zero value
// is invalid.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers a new store for T. Each call yields a distinct
// kind, even for the same T.
func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	registry.Lock()
	defer registry.Unlock()
	registry.names = append(registry.names, fmt.Sprintf("%T", zero))
	return ComponentKind[T]{id: ComponentID(len(registry.names))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is what component files export, e.g. TransformComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
