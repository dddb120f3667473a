package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
)

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
}

type inputSpec = prefabs.InputComponentSpec

// addInput resolves action bindings against the entity's profile, so a
// binding for an action the profile lacks fails the build.
func addInput(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[inputSpec](raw)
	if err != nil {
		return fmt.Errorf("decode input spec: %w", err)
	}

	var (
		actions *character.ActionCatalog
		profile string
	)
	if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
		lp, err := ctx.Options.Profiles.Get(ch.Profile)
		if err != nil {
			return err
		}
		actions = lp.Profile.Actions
		profile = ch.Profile
	}

	bindings, err := buildBindings(spec.Bindings, profile, actions)
	if err != nil {
		return err
	}
	for _, dropped := range droppedBindings(spec.Bindings, actions) {
		logBuild(ctx, "profile %q has no action %q, dropping its binding", profile, dropped)
	}

	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{
		Intent:   character.Intent{Action: character.ActionNone},
		Bindings: bindings,
	})
}

func buildBindings(specs []prefabs.BindingSpec, profile string, actions *character.ActionCatalog) ([]component.ActionBinding, error) {
	out := make([]component.ActionBinding, 0, len(specs))
	for _, b := range specs {
		if err := actions.CheckAction(profile, b.Action); err != nil {
			if b.Optional {
				continue
			}
			return nil, err
		}

		binding := component.ActionBinding{Action: b.Action}
		for _, name := range b.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding %q: key %q: %w", b.Action, name, err)
			}
			binding.Keys = append(binding.Keys, key)
		}
		for _, name := range b.Buttons {
			btn, ok := gamepadButtons[name]
			if !ok {
				return nil, fmt.Errorf("binding %q: unknown gamepad button %q", b.Action, name)
			}
			binding.Buttons = append(binding.Buttons, btn)
		}
		out = append(out, binding)
	}
	return out, nil
}

func droppedBindings(specs []prefabs.BindingSpec, actions *character.ActionCatalog) []string {
	var out []string
	for _, b := range specs {
		if b.Optional && !actions.Has(b.Action) {
			out = append(out, b.Action)
		}
	}
	return out
}
