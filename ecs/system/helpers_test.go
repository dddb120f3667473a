package system

import (
	"math"
	"testing"

	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// spawnCharacter adds a character using a shipped profile with an Input.
func spawnCharacter(t *testing.T, w *ecs.World, profile string, at common.Vec3) ecs.Entity {
	t.Helper()
	p, _, err := prefabs.LoadProfile(profile)
	if err != nil {
		t.Fatalf("LoadProfile(%q): %v", profile, err)
	}
	m, err := character.NewMachine(p, at)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Profile: profile, Machine: m}); err != nil {
		t.Fatalf("add character: %v", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Intent: character.Intent{Action: character.ActionNone}}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	return e
}

func setIntent(t *testing.T, w *ecs.World, e ecs.Entity, in character.Intent) {
	t.Helper()
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no input", e)
	}
	input.Intent = in
}

func machineOf(t *testing.T, w *ecs.World, e ecs.Entity) *character.Machine {
	t.Helper()
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no character", e)
	}
	return ch.Machine
}
