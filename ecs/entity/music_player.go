package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
)

const musicFadeFrames = 30

func NewMusicPlayer(w *ecs.World) (ecs.Entity, error) {
	ent, err := BuildEntity(w, "music_player.yaml")
	if err != nil {
		return 0, fmt.Errorf("music player: %w", err)
	}
	return ent, nil
}

type musicPlayerSpec = prefabs.MusicPlayerComponentSpec

// addMusicPlayer registers tracks by name. Audio is decoded on first play;
// an autoplay track is requested as soon as the player exists.
func addMusicPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[musicPlayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode music player spec: %w", err)
	}

	mp := &component.MusicPlayer{Tracks: make(map[string]*component.MusicTrack, len(spec.Tracks))}
	for _, track := range spec.Tracks {
		name := strings.TrimSpace(track.Name)
		if name == "" || track.File == "" {
			return fmt.Errorf("music track needs a name and a file")
		}
		if _, dup := mp.Tracks[name]; dup {
			return fmt.Errorf("duplicate music track %q", name)
		}
		mp.Tracks[name] = &component.MusicTrack{File: track.File, Volume: track.Volume, Loop: track.Loop}
	}
	if err := ecs.Add(w, e, component.MusicPlayerComponent.Kind(), mp); err != nil {
		return err
	}

	if spec.Autoplay == "" {
		return nil
	}
	if _, ok := mp.Tracks[spec.Autoplay]; !ok {
		return fmt.Errorf("autoplay track %q is not registered", spec.Autoplay)
	}
	req := ecs.CreateEntity(w)
	return ecs.Add(w, req, component.MusicRequestComponent.Kind(), &component.MusicRequest{
		Track:         spec.Autoplay,
		FadeOutFrames: musicFadeFrames,
	})
}
