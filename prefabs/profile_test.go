package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
)

var spawnOrigin = common.Vec3{}

func TestShippedProfilesBuild(t *testing.T) {
	names, err := ProfileNames()
	if err != nil {
		t.Fatalf("ProfileNames: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("expected at least two profiles, got %v", names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, spec, err := LoadProfile(name)
			if err != nil {
				t.Fatalf("LoadProfile(%q): %v", name, err)
			}
			if p.Name != name {
				t.Fatalf("profile name = %q, want %q", p.Name, name)
			}
			if spec.Sheet.Image == "" {
				t.Fatalf("profile %q has no sheet image", name)
			}
			if _, err := character.NewMachine(p, spawnOrigin); err != nil {
				t.Fatalf("NewMachine: %v", err)
			}
		})
	}
}

func TestLoveProfileUsesDefaultStats(t *testing.T) {
	p, _, err := LoadProfile("love")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Stats != character.DefaultStats() {
		t.Fatalf("stats = %+v, want defaults %+v", p.Stats, character.DefaultStats())
	}
	if p.Type != "any" {
		t.Fatalf("type = %q, want any", p.Type)
	}
	if !p.Actions.Has("attack") {
		t.Fatalf("love should have an attack action")
	}
}

func TestKnightCastIsForced(t *testing.T) {
	p, _, err := LoadProfile("knight")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	cast, ok := p.Actions.Get("cast")
	if !ok || !cast.Force {
		t.Fatalf("cast = %+v, %v; want a forced action", cast, ok)
	}
	attack, _ := p.Actions.Get("attack")
	if attack.Preempts(cast) {
		t.Fatalf("attack must not pre-empt cast")
	}
	if p.Stats.MoveSpeed != 3 {
		t.Fatalf("move speed = %v, want 3", p.Stats.MoveSpeed)
	}
}

func TestParseProfileSpecRejectsUnknownKeys(t *testing.T) {
	_, err := ParseProfileSpec([]byte("name: x\nstats:\n  move_sped: 3\n"))
	if err == nil {
		t.Fatalf("expected an error for a misspelled key")
	}
}

func TestBuildProfileErrors(t *testing.T) {
	base := `
name: broken
clips:
  idle: {repeat: true, cycle: 1, frames: [{start: 0, end: 1}]}
  moving: {repeat: true, cycle: 1, frames: [{start: 0, end: 1}]}
`
	cases := []struct {
		name    string
		extra   string
		wantErr error
	}{
		{"action_targets_missing_clip", "actions:\n  attack: {target: swing, end_time: 0.3}\n", character.ErrUnknownClip},
		{"reserved_action_name", "actions:\n  normal: {target: idle, end_time: 0.3}\n", character.ErrReservedName},
		{"negative_end_time", "actions:\n  attack: {target: idle, end_time: -1}\n", character.ErrBadEndTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParseProfileSpec([]byte(base + tc.extra))
			if err != nil {
				t.Fatalf("ParseProfileSpec: %v", err)
			}
			_, err = spec.Build()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Build error = %v, want %v", err, tc.wantErr)
			}
			var cfg *character.ConfigError
			if !errors.As(err, &cfg) {
				t.Fatalf("Build error %T is not a ConfigError", err)
			}
			if cfg.Profile != "broken" {
				t.Fatalf("ConfigError profile = %q, want broken", cfg.Profile)
			}
		})
	}
}

func TestBuildProfileMissingLocomotionClip(t *testing.T) {
	spec, err := ParseProfileSpec([]byte(`
name: lame
clips:
  idle: {repeat: true, cycle: 1, frames: [{start: 0, end: 1}]}
`))
	if err != nil {
		t.Fatalf("ParseProfileSpec: %v", err)
	}
	if _, err := spec.Build(); !errors.Is(err, character.ErrUnknownClip) {
		t.Fatalf("Build error = %v, want ErrUnknownClip", err)
	}
}

func TestBuildProfileUnknownFacing(t *testing.T) {
	spec := DefaultProfileSpec()
	spec.Facing = "up"
	if _, err := spec.Build(); err == nil {
		t.Fatalf("expected an error for facing %q", spec.Facing)
	}
}

func TestProfileNameFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{"prefabs/profiles/love.yaml", "love", true},
		{"/home/me/cardwalk/prefabs/profiles/knight.yml", "knight", true},
		{"prefabs/player.yaml", "", false},
		{"prefabs/profiles/notes.txt", "", false},
		{"prefabs/scripts/wanderer.tengo", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := ProfileNameFromPath(tc.path)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("ProfileNameFromPath(%q) = %q, %v; want %q, %v", tc.path, got, ok, tc.want, tc.ok)
			}
		})
	}
}
