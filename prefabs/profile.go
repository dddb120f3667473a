package prefabs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
)

// ProfileSpec is the YAML form of a character profile: stats, the sheet its
// atlas offsets address, its clips and its action catalog.
type ProfileSpec struct {
	Name    string                `yaml:"name"`
	Type    string                `yaml:"type"`
	Facing  string                `yaml:"facing"`
	Stats   StatsSpec             `yaml:"stats"`
	Sheet   SheetSpec             `yaml:"sheet"`
	Clips   map[string]ClipSpec   `yaml:"clips"`
	Actions map[string]ActionSpec `yaml:"actions"`
}

type StatsSpec struct {
	MaxHP     int     `yaml:"max_hp"`
	HP        int     `yaml:"hp"`
	MaxMP     int     `yaml:"max_mp"`
	MP        int     `yaml:"mp"`
	MaxEP     int     `yaml:"max_ep"`
	EP        int     `yaml:"ep"`
	Exp       int     `yaml:"exp"`
	MoveSpeed float64 `yaml:"move_speed"`
	Attack    int     `yaml:"attack"`
	Defence   int     `yaml:"defence"`
	Magic     int     `yaml:"magic"`
}

// SheetSpec names the shared sprite sheet. FrameU and FrameV are the
// normalized size of one cell.
type SheetSpec struct {
	Image  string  `yaml:"image"`
	FrameU float64 `yaml:"frame_u"`
	FrameV float64 `yaml:"frame_v"`
}

type ClipSpec struct {
	Repeat bool        `yaml:"repeat"`
	Cycle  float64     `yaml:"cycle"`
	Frames []FrameSpec `yaml:"frames"`
}

type FrameSpec struct {
	Start        float64 `yaml:"start"`
	End          float64 `yaml:"end"`
	Atlas        UVSpec  `yaml:"atlas"`
	Displacement XYZSpec `yaml:"displacement"`
}

type UVSpec struct {
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
}

type XYZSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ActionSpec struct {
	Target   string  `yaml:"target"`
	EndTime  float64 `yaml:"end_time"`
	Force    bool    `yaml:"force"`
	Priority int     `yaml:"priority"`
}

// DefaultProfileSpec carries the stat defaults that a profile file may leave
// out.
func DefaultProfileSpec() ProfileSpec {
	def := character.DefaultProfile()
	s := def.Stats
	return ProfileSpec{
		Name:   def.Name,
		Type:   def.Type,
		Facing: string(def.Facing),
		Stats: StatsSpec{
			MaxHP:     s.MaxHP,
			HP:        s.HP,
			MaxMP:     s.MaxMP,
			MP:        s.MP,
			MaxEP:     s.MaxEP,
			EP:        s.EP,
			Exp:       s.Exp,
			MoveSpeed: s.MoveSpeed,
			Attack:    s.Attack,
			Defence:   s.Defence,
			Magic:     s.Magic,
		},
		Sheet: SheetSpec{FrameU: 1, FrameV: 1},
	}
}

// LoadProfileSpec reads profiles/<name>.yaml over the defaults.
func LoadProfileSpec(name string) (*ProfileSpec, error) {
	data, err := Load(profilePath(name))
	if err != nil {
		return nil, fmt.Errorf("prefabs: load profile %q: %w", name, err)
	}
	spec, err := ParseProfileSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: profile %q: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return spec, nil
}

func ParseProfileSpec(data []byte) (*ProfileSpec, error) {
	spec := DefaultProfileSpec()
	spec.Name = ""
	if err := unmarshalStrict(data, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadProfile loads and builds a profile in one step.
func LoadProfile(name string) (character.Profile, *ProfileSpec, error) {
	spec, err := LoadProfileSpec(name)
	if err != nil {
		return character.Profile{}, nil, err
	}
	p, err := spec.Build()
	if err != nil {
		return character.Profile{}, nil, err
	}
	return p, spec, nil
}

// Build turns the spec into a validated character profile.
func (s ProfileSpec) Build() (character.Profile, error) {
	p := character.DefaultProfile()
	if s.Name != "" {
		p.Name = s.Name
	}
	if s.Type != "" {
		p.Type = s.Type
	}
	switch character.Facing(s.Facing) {
	case character.FacingLeft:
		p.Facing = character.FacingLeft
	case character.FacingRight, "":
		p.Facing = character.FacingRight
	default:
		return character.Profile{}, fmt.Errorf("prefabs: profile %q: unknown facing %q", p.Name, s.Facing)
	}
	p.Stats = character.Stats{
		MaxHP:     s.Stats.MaxHP,
		HP:        s.Stats.HP,
		MaxMP:     s.Stats.MaxMP,
		MP:        s.Stats.MP,
		MaxEP:     s.Stats.MaxEP,
		EP:        s.Stats.EP,
		Exp:       s.Stats.Exp,
		MoveSpeed: s.Stats.MoveSpeed,
		Attack:    s.Stats.Attack,
		Defence:   s.Stats.Defence,
		Magic:     s.Stats.Magic,
	}

	clips, err := anim.NewLibrary(s.clipList()...)
	if err != nil {
		return character.Profile{}, fmt.Errorf("prefabs: profile %q: %w", p.Name, err)
	}
	p.Clips = clips

	descs := make(map[string]character.ActionDescriptor, len(s.Actions))
	for name, a := range s.Actions {
		descs[name] = character.ActionDescriptor{
			Target:   a.Target,
			EndTime:  a.EndTime,
			Force:    a.Force,
			Priority: a.Priority,
		}
	}
	actions, err := character.NewActionCatalog(descs)
	if err != nil {
		return character.Profile{}, withProfile(p.Name, err)
	}
	p.Actions = actions

	if err := p.Validate(); err != nil {
		return character.Profile{}, err
	}
	return p, nil
}

// clipList returns the clips sorted by name so library errors are stable.
func (s ProfileSpec) clipList() []anim.Clip {
	names := make([]string, 0, len(s.Clips))
	for name := range s.Clips {
		names = append(names, name)
	}
	sort.Strings(names)

	clips := make([]anim.Clip, 0, len(names))
	for _, name := range names {
		cs := s.Clips[name]
		frames := make([]anim.Frame, 0, len(cs.Frames))
		for _, f := range cs.Frames {
			frames = append(frames, anim.Frame{
				Start:        f.Start,
				End:          f.End,
				Displacement: common.Vec3{X: f.Displacement.X, Y: f.Displacement.Y, Z: f.Displacement.Z},
				Atlas:        common.Vec2{U: f.Atlas.U, V: f.Atlas.V},
			})
		}
		clips = append(clips, anim.Clip{Name: name, Frames: frames, Repeat: cs.Repeat, Cycle: cs.Cycle})
	}
	return clips
}

func withProfile(name string, err error) error {
	var cfg *character.ConfigError
	if errors.As(err, &cfg) && cfg.Profile == "" {
		cfg.Profile = name
	}
	return err
}
