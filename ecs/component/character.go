package component

import "github.com/milk9111/cardwalk/character"

// Character binds an entity to its state machine. The machine is the only
// owner of the character's position and animation state; render components
// are written from its output each tick.
type Character struct {
	Profile string
	Machine *character.Machine
}

var CharacterComponent = NewComponent[Character]()
