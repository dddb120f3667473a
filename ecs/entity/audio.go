package entity

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/cardwalk/assets"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
)

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponent(spec.Clips, assets.LoadAudioPlayer)
	if err != nil {
		return fmt.Errorf("build audio component: %w", err)
	}
	for action, name := range spec.ActionSounds {
		if comp.Sound(name) == nil {
			return fmt.Errorf("action %q plays unknown sound %q", action, name)
		}
	}
	comp.ActionSounds = spec.ActionSounds
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

// buildAudioComponent loads every clip. A clip that fails to load keeps a
// nil player and is logged, so a missing sound never blocks a spawn.
func buildAudioComponent(specs []prefabs.AudioSpec, load func(string) (*audio.Player, error)) (*component.Audio, error) {
	comp := &component.Audio{Sounds: make([]component.Sound, 0, len(specs))}
	for i, clip := range specs {
		if clip.Name == "" {
			return nil, fmt.Errorf("audio clip %d has no name", i)
		}
		if comp.Sound(clip.Name) != nil {
			return nil, fmt.Errorf("duplicate audio clip %q", clip.Name)
		}
		player, err := load(clip.File)
		if err != nil {
			log.Printf("audio: clip %q (%s): %v", clip.Name, clip.File, err)
			player = nil
		}
		vol := clip.Volume
		if vol <= 0 {
			vol = 1
		}
		comp.Sounds = append(comp.Sounds, component.Sound{Name: clip.Name, Player: player, Volume: vol})
	}
	return comp, nil
}
