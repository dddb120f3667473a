package system

import (
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

// AudioSystem plays per-entity sound effects. Starting an action queues the
// sound mapped to it; queued Play and Stop flags are then applied.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range CharacterEvents(w) {
		if evt.Kind != ecs.CharacterEventActionStarted {
			continue
		}
		if audioComp, ok := ecs.Get(w, evt.Entity, component.AudioComponent.Kind()); ok {
			queueActionSound(audioComp, evt.Action)
		}
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Sounds {
			applySound(&audioComp.Sounds[i])
		}
	})
}

func applySound(s *component.Sound) {
	if s.Play {
		if s.Player != nil {
			s.Player.SetVolume(s.Volume)
			s.Player.Rewind()
			s.Player.Play()
		}
		s.Play = false
	}
	if s.Stop {
		if s.Player != nil && s.Player.IsPlaying() {
			s.Player.Pause()
		}
		s.Stop = false
	}
}

// queueActionSound flags the sound mapped to action and reports whether one
// was found.
func queueActionSound(audioComp *component.Audio, action string) bool {
	name, ok := audioComp.ActionSounds[action]
	if !ok {
		return false
	}
	s := audioComp.Sound(name)
	if s == nil {
		return false
	}
	s.Play = true
	return true
}
