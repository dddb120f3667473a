package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteComponentSpec struct {
	Image      string  `yaml:"image"`
	UseSource  bool    `yaml:"use_source"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	FacingLeft bool    `yaml:"facing_left"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

// CharacterComponentSpec names the profile a character spawns with. The
// sheet comes from the profile.
type CharacterComponentSpec struct {
	Profile string `yaml:"profile"`
}

type InputComponentSpec struct {
	Bindings []BindingSpec `yaml:"bindings"`
}

// BindingSpec maps key and gamepad button names to an action. Keys use
// ebiten's names ("J", "Space"); buttons use the standard layout names
// ("RightBottom"). An optional binding is dropped when the profile has no
// such action instead of failing the build.
type BindingSpec struct {
	Action   string   `yaml:"action"`
	Keys     []string `yaml:"keys"`
	Buttons  []string `yaml:"buttons"`
	Optional bool     `yaml:"optional"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	Scale      float64 `yaml:"scale"`
}

type ScriptComponentSpec struct {
	Path string `yaml:"path"`
}

type AudioComponentSpec struct {
	Clips        []AudioSpec       `yaml:"clips"`
	ActionSounds map[string]string `yaml:"action_sounds"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type MusicPlayerComponentSpec struct {
	Tracks   []MusicTrackSpec `yaml:"tracks"`
	Autoplay string           `yaml:"autoplay"`
}

// MusicTrackSpec registers a track under a key. Tracks are loaded lazily on
// first play.
type MusicTrackSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}
