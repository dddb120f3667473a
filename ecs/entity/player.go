package entity

import (
	"fmt"

	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
)

// NewPlayer spawns the locally controlled character. An empty profile keeps
// the prefab's.
func NewPlayer(w *ecs.World, profiles *Profiles, profile string) (ecs.Entity, error) {
	ent, err := BuildEntityWith(w, "player.yaml", BuildOptions{Profiles: profiles, Profile: profile})
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return ent, nil
}

// NewWanderer spawns a scripted NPC at spawn.
func NewWanderer(w *ecs.World, profiles *Profiles, spawn common.Vec3) (ecs.Entity, error) {
	ent, err := BuildEntityWith(w, "wanderer.yaml", BuildOptions{Profiles: profiles, Spawn: &spawn})
	if err != nil {
		return 0, fmt.Errorf("wanderer: %w", err)
	}
	return ent, nil
}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	ent, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return ent, nil
}
