package entity

import (
	"fmt"

	"github.com/milk9111/cardwalk/assets"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

// ReloadProfile rebuilds a profile and swaps it into every live character
// using it. Characters keep their position and facing. If the new profile
// does not build, or drops an action a live character has bound, nothing
// changes.
func ReloadProfile(w *ecs.World, profiles *Profiles, name string) (int, error) {
	if profiles == nil {
		return 0, fmt.Errorf("reload profile %q: nil cache", name)
	}
	lp, err := profiles.build(name)
	if err != nil {
		return 0, fmt.Errorf("reload profile %q: %w", name, err)
	}
	if err := checkLiveBindings(w, name, lp.Profile.Actions); err != nil {
		return 0, fmt.Errorf("reload profile %q: %w", name, err)
	}
	profiles.store(name, lp)

	assets.ForgetSheet(lp.Sheet.Image)
	rebound := 0
	var firstErr error
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		if ch.Profile != name {
			return
		}
		if err := ch.Machine.Rebind(lp.Profile); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("reload profile %q: entity %d: %w", name, e, err)
			}
			return
		}
		rebound++

		if sheet, ok := ecs.Get(w, e, component.SpriteSheetComponent.Kind()); ok {
			sheet.Name = lp.Sheet.Image
			sheet.FrameU = lp.Sheet.FrameU
			sheet.FrameV = lp.Sheet.FrameV
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.Image = assets.Sheet(sheet.Name, gridCells(sheet.FrameU), gridCells(sheet.FrameV))
			}
		}
	})
	return rebound, firstErr
}

func checkLiveBindings(w *ecs.World, name string, actions *character.ActionCatalog) error {
	var firstErr error
	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ch *component.Character, in *component.Input) {
		if firstErr != nil || ch.Profile != name {
			return
		}
		for _, b := range in.Bindings {
			if err := actions.CheckAction(name, b.Action); err != nil {
				firstErr = fmt.Errorf("entity %d: %w", e, err)
				return
			}
		}
	})
	return firstErr
}
