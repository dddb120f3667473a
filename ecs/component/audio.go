package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Sound is one named effect. Play and Stop are requests the audio system
// consumes on its next update. Player is nil when the file failed to load.
type Sound struct {
	Name   string
	Player *audio.Player
	Volume float64
	Play   bool
	Stop   bool
}

// Audio holds an entity's sound effects. ActionSounds maps an action name to
// the sound played when that action starts.
type Audio struct {
	Sounds       []Sound
	ActionSounds map[string]string
}

// Sound returns the named sound, or nil.
func (a *Audio) Sound(name string) *Sound {
	if a == nil {
		return nil
	}
	for i := range a.Sounds {
		if a.Sounds[i].Name == name {
			return &a.Sounds[i]
		}
	}
	return nil
}

var AudioComponent = NewComponent[Audio]()
