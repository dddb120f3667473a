package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

const (
	// PadRadius is the on-screen touch pad radius in layout pixels.
	PadRadius = 100.0
	padMargin = 40.0
)

// PadCenter is where the touch pad sits in layout coordinates.
func PadCenter() (float64, float64) {
	return padMargin + PadRadius, common.BaseHeight - padMargin - PadRadius
}

// InputSystem writes the local player's intent from the keyboard, the first
// gamepad and the touch pad. NPC intents come from ScriptSystem.
type InputSystem struct {
	padTouch    ebiten.TouchID
	padTracking bool
	touches     []ebiten.TouchID
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := keyboardIntent(ebiten.IsKeyPressed)

	var (
		gamepad    ebiten.GamepadID
		hasGamepad bool
	)
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		gamepad = gamepads[0]
		hasGamepad = ebiten.IsStandardGamepadLayoutAvailable(gamepad)
	}
	if hasGamepad {
		x := ebiten.StandardGamepadAxisValue(gamepad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gamepad, ebiten.StandardGamepadAxisLeftStickVertical)
		// Stick y grows downward.
		in = in.Merge(character.IntentFromAxes(x, -y))
	}

	padX, padY, padActive := i.touchPad()
	if padActive {
		in = in.Merge(character.IntentFromAxes(padX, padY))
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		intent := in
		intent.Action = boundAction(input.Bindings, ebiten.IsKeyPressed, func(b ebiten.StandardGamepadButton) bool {
			return hasGamepad && ebiten.IsStandardGamepadButtonPressed(gamepad, b)
		})
		input.Intent = intent
		input.PadActive = padActive
		input.PadX = padX
		input.PadY = padY
	})
}

// touchPad follows the first touch that started inside the pad until it is
// released.
func (i *InputSystem) touchPad() (float64, float64, bool) {
	i.touches = ebiten.AppendTouchIDs(i.touches[:0])
	cx, cy := PadCenter()

	if i.padTracking {
		found := false
		for _, id := range i.touches {
			if id == i.padTouch {
				found = true
				break
			}
		}
		if !found {
			i.padTracking = false
		}
	}
	if !i.padTracking {
		for _, id := range i.touches {
			tx, ty := ebiten.TouchPosition(id)
			if math.Hypot(float64(tx)-cx, float64(ty)-cy) <= PadRadius {
				i.padTouch = id
				i.padTracking = true
				break
			}
		}
	}
	if !i.padTracking {
		return 0, 0, false
	}

	tx, ty := ebiten.TouchPosition(i.padTouch)
	x, y := padAxes(cx, cy, float64(tx), float64(ty), PadRadius)
	return x, y, true
}

// padAxes converts a touch point into a stick vector: scaled by the radius,
// clamped to unit length, y up-positive.
func padAxes(cx, cy, tx, ty, radius float64) (float64, float64) {
	if radius <= 0 {
		return 0, 0
	}
	x := (tx - cx) / radius
	y := -(ty - cy) / radius
	if m := math.Hypot(x, y); m > 1 {
		x /= m
		y /= m
	}
	return x, y
}

func keyboardIntent(pressed func(ebiten.Key) bool) character.Intent {
	return character.Intent{
		Up:     pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp),
		Down:   pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown),
		Left:   pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft),
		Right:  pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight),
		Run:    pressed(ebiten.KeyShiftLeft) || pressed(ebiten.KeyShiftRight),
		Action: character.ActionNone,
	}
}

// boundAction returns the first binding with a held key or button. Holding an
// action key keeps requesting it.
func boundAction(bindings []component.ActionBinding, key func(ebiten.Key) bool, button func(ebiten.StandardGamepadButton) bool) string {
	for _, b := range bindings {
		for _, k := range b.Keys {
			if key(k) {
				return b.Action
			}
		}
		for _, btn := range b.Buttons {
			if button(btn) {
				return b.Action
			}
		}
	}
	return character.ActionNone
}
