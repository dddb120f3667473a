package character

import (
	"fmt"
	"log"

	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/common"
)

// Stats is the profile stat block. Only MoveSpeed is read by the state
// machine; the rest is carried for game code.
type Stats struct {
	MaxHP int
	HP    int
	MaxMP int
	MP    int
	MaxEP int
	EP    int
	Exp   int

	MoveSpeed float64
	Attack    int
	Defence   int
	Magic     int
}

func DefaultStats() Stats {
	return Stats{
		MaxHP:     100,
		HP:        100,
		MaxMP:     100,
		MP:        100,
		MaxEP:     75,
		EP:        100,
		Exp:       0,
		MoveSpeed: 2,
		Attack:    2,
		Defence:   1,
		Magic:     1,
	}
}

// Profile is everything needed to spawn a character of one kind. Clips and
// Actions are shared read-only by every Machine built from the profile.
type Profile struct {
	Name    string
	Type    string
	Stats   Stats
	Facing  Facing
	Clips   *anim.Library
	Actions *ActionCatalog
}

func DefaultProfile() Profile {
	return Profile{
		Name:   "love",
		Type:   "any",
		Stats:  DefaultStats(),
		Facing: FacingRight,
	}
}

// Validate checks that the profile can drive a Machine: both locomotion clips
// exist and every action targets a clip.
func (p Profile) Validate() error {
	if p.Clips == nil {
		return &ConfigError{Profile: p.Name, Kind: "clip", Name: AnimIdle, Err: ErrUnknownClip}
	}
	for _, name := range []string{AnimIdle, AnimMoving} {
		if !p.Clips.Has(name) {
			return &ConfigError{Profile: p.Name, Kind: "clip", Name: name, Err: ErrUnknownClip}
		}
	}
	if p.Actions == nil {
		return nil
	}
	for _, name := range p.Actions.Names() {
		desc, _ := p.Actions.Get(name)
		if !p.Clips.Has(desc.Target) {
			return &ConfigError{
				Profile: p.Name,
				Kind:    "clip",
				Name:    desc.Target,
				Err:     fmt.Errorf("%w (target of action %q)", ErrUnknownClip, name),
			}
		}
	}
	return nil
}

// sanitizeSpeed clamps a negative or non-finite speed to zero.
func sanitizeSpeed(profile string, speed float64) float64 {
	if common.Finite(speed) && speed >= 0 {
		return speed
	}
	log.Printf("character: profile %q: invalid move speed %v, clamping to 0", profile, speed)
	return 0
}
