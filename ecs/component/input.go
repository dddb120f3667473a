package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cardwalk/character"
)

// ActionBinding maps keys and gamepad buttons to an action catalog key.
type ActionBinding struct {
	Action  string
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Input stores per-frame intent for an entity.
type Input struct {
	Intent   character.Intent
	Bindings []ActionBinding

	// Touch pad knob, in pad-local units, for the HUD.
	PadActive bool
	PadX      float64
	PadY      float64
}

var InputComponent = NewComponent[Input]()
