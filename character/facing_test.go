package character

import (
	"math"
	"testing"
)

func TestResolveFacing(t *testing.T) {
	cases := []struct {
		name string
		prev Facing
		in   Intent
		want Facing
	}{
		{"left", FacingRight, Intent{Left: true}, FacingLeft},
		{"right", FacingLeft, Intent{Right: true}, FacingRight},
		{"both_prefers_left", FacingRight, Intent{Left: true, Right: true}, FacingLeft},
		{"none_keeps_left", FacingLeft, Intent{Up: true}, FacingLeft},
		{"none_keeps_right", FacingRight, Intent{}, FacingRight},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ResolveFacing(c.prev, c.in); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestFacingPersistsAcrossTicks(t *testing.T) {
	m := newTestMachine(t, 2)

	m.SetIntent(Intent{Left: true})
	if out := m.Update(0.1); out.FacingYaw != math.Pi {
		t.Fatalf("expected yaw pi after moving left, got %v", out.FacingYaw)
	}

	m.SetIntent(Intent{})
	for i := 0; i < 5; i++ {
		m.Update(0.1)
		if m.Snapshot().Facing != FacingLeft {
			t.Fatalf("tick %d: facing lost", i)
		}
	}
	m.SetIntent(Intent{Up: true})
	m.Update(0.1)
	if m.Snapshot().Facing != FacingLeft {
		t.Fatalf("vertical movement should keep facing left")
	}

	m.SetIntent(Intent{Right: true})
	if out := m.Update(0.1); out.FacingYaw != 0 {
		t.Fatalf("expected yaw 0 after moving right, got %v", out.FacingYaw)
	}
}
