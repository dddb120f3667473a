package main

import (
	"strings"
	"testing"

	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
)

func TestDescribe(t *testing.T) {
	s := character.Snapshot{
		Profile:  "knight",
		State:    character.Moving(),
		History:  [2]character.State{character.Idle(), character.Moving()},
		Clock:    0.25,
		Facing:   character.FacingLeft,
		Position: common.Vec3{X: 1.5, Z: -2},
	}
	got := describe(s)
	for _, want := range []string{"knight", "moving", "action=normal", "clock=0.25", "facing=left", "pos=(1.50, -2.00)", "<- idle"} {
		if !strings.Contains(got, want) {
			t.Fatalf("describe = %q, missing %q", got, want)
		}
	}

	s.History = [2]character.State{character.Moving(), character.Moving()}
	if got := describe(s); strings.Contains(got, "<-") {
		t.Fatalf("describe = %q, want no history marker", got)
	}
}
