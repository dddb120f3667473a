package entity

import (
	"fmt"

	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/prefabs"
)

// LoadedProfile is a built profile plus the sheet layout its clips address.
type LoadedProfile struct {
	Profile character.Profile
	Sheet   prefabs.SheetSpec
}

// Profiles caches built profiles by name so every character of a kind
// shares one clip library and one catalog.
type Profiles struct {
	loaded map[string]LoadedProfile
	load   func(name string) (character.Profile, *prefabs.ProfileSpec, error)
}

func NewProfiles() *Profiles {
	return &Profiles{
		loaded: make(map[string]LoadedProfile),
		load:   prefabs.LoadProfile,
	}
}

func (p *Profiles) Get(name string) (LoadedProfile, error) {
	if p == nil {
		return LoadedProfile{}, fmt.Errorf("profiles: nil cache")
	}
	if lp, ok := p.loaded[name]; ok {
		return lp, nil
	}
	return p.Reload(name)
}

// Reload rebuilds a profile from disk and replaces the cached copy. On error
// the cached copy is kept.
func (p *Profiles) Reload(name string) (LoadedProfile, error) {
	if p == nil {
		return LoadedProfile{}, fmt.Errorf("profiles: nil cache")
	}
	lp, err := p.build(name)
	if err != nil {
		return LoadedProfile{}, err
	}
	p.store(name, lp)
	return lp, nil
}

func (p *Profiles) build(name string) (LoadedProfile, error) {
	prof, spec, err := p.load(name)
	if err != nil {
		return LoadedProfile{}, err
	}
	return LoadedProfile{Profile: prof, Sheet: spec.Sheet}, nil
}

func (p *Profiles) store(name string, lp LoadedProfile) {
	if p.loaded == nil {
		p.loaded = make(map[string]LoadedProfile)
	}
	p.loaded[name] = lp
}
