package character

import (
	"errors"
	"math"
	"testing"
)

func TestIntentFromAxes(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want Intent
	}{
		{"center", 0, 0, Intent{Action: ActionNone}},
		{"inside_dead_zone", 0.1, -0.15, Intent{Action: ActionNone}},
		{"walk_right", 0.5, 0, Intent{Right: true, Action: ActionNone}},
		{"walk_up", 0, 0.3, Intent{Up: true, Action: ActionNone}},
		{"run_left", -0.9, 0, Intent{Left: true, Run: true, Action: ActionNone}},
		{"run_threshold_is_exclusive", 0, -0.7, Intent{Down: true, Action: ActionNone}},
		{"diagonal", 0.5, 0.5, Intent{Up: true, Right: true, Run: true, Action: ActionNone}},
		{"shallow_diagonal", 0.6, 0.1, Intent{Right: true, Action: ActionNone}},
		{"short_diagonal", 0.18, 0.18, Intent{Up: true, Right: true, Action: ActionNone}},
		{"short_shallow_diagonal", 0.19, 0.1, Intent{Up: true, Right: true, Action: ActionNone}},
		{"short_near_axis", 0.2, 0.05, Intent{Right: true, Action: ActionNone}},
		{"short_down_left", -0.15, -0.15, Intent{Down: true, Left: true, Action: ActionNone}},
		{"clamped", 30, 0, Intent{Right: true, Run: true, Action: ActionNone}},
		{"nan", math.NaN(), 1, Intent{Action: ActionNone}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IntentFromAxes(c.x, c.y); got != c.want {
				t.Fatalf("IntentFromAxes(%v, %v) = %+v, want %+v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestIntentMerge(t *testing.T) {
	a := Intent{Left: true, Action: ActionNone}
	b := Intent{Up: true, Run: true, Action: "attack"}
	got := a.Merge(b)
	want := Intent{Left: true, Up: true, Run: true, Action: "attack"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got := b.Merge(Intent{Action: "cast"}); got.Action != "attack" {
		t.Fatalf("first action should win, got %q", got.Action)
	}
	if got := (Intent{}).ActionAttempt(); got != ActionNone {
		t.Fatalf("empty action should read as none, got %q", got)
	}
}

func TestNewActionCatalogRejects(t *testing.T) {
	cases := []struct {
		name    string
		actions map[string]ActionDescriptor
		want    error
	}{
		{"normal_reserved", map[string]ActionDescriptor{ActionNormal: {Target: "x"}}, ErrReservedName},
		{"none_reserved", map[string]ActionDescriptor{ActionNone: {Target: "x"}}, ErrReservedName},
		{"empty_target", map[string]ActionDescriptor{"attack": {}}, ErrUnknownClip},
		{"negative_end", map[string]ActionDescriptor{"attack": {Target: "attack", EndTime: -1}}, ErrBadEndTime},
		{"nan_end", map[string]ActionDescriptor{"attack": {Target: "attack", EndTime: math.NaN()}}, ErrBadEndTime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewActionCatalog(c.actions)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestCatalogCheckAction(t *testing.T) {
	cat := testCatalog(t)
	for _, ok := range []string{"", ActionNone, "attack", "cast"} {
		if err := cat.CheckAction("love", ok); err != nil {
			t.Fatalf("CheckAction(%q): %v", ok, err)
		}
	}
	err := cat.CheckAction("love", "fireball")
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected unknown action, got %v", err)
	}
	if names := cat.Names(); len(names) != 3 || names[0] != "attack" {
		t.Fatalf("unexpected names %v", names)
	}
}
