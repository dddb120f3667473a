package system

import (
	"math"
	"testing"

	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

func TestLocalToWorld(t *testing.T) {
	d := common.Vec3{X: 0.1, Y: 0.2, Z: 0.3}

	got := localToWorld(d, 0)
	if !near(got.X, 0.1) || !near(got.Y, 0.2) || !near(got.Z, 0.3) {
		t.Fatalf("yaw 0: got %+v", got)
	}

	got = localToWorld(d, math.Pi)
	if !near(got.X, -0.1) || !near(got.Y, 0.2) || !near(got.Z, -0.3) {
		t.Fatalf("yaw pi: got %+v", got)
	}
}

func TestApplyOutput(t *testing.T) {
	var tr component.Transform
	applyOutput(&tr, character.Output{
		Displacement: common.Vec3{X: 0.5, Y: 0.25},
		FacingYaw:    math.Pi,
		Position:     common.Vec3{X: 2, Z: -1},
	})
	if !near(tr.X, 1.5) || !near(tr.Y, 0.25) || !near(tr.Z, -1) || tr.Yaw != math.Pi {
		t.Fatalf("transform = %+v", tr)
	}
}

func TestBindingSystemFollowsMachine(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnCharacter(t, w, "love", common.Vec3{X: 3, Z: 4})
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("add transform: %v", err)
	}

	setIntent(t, w, e, character.Intent{Left: true, Action: character.ActionNone})
	NewCharacterSystem(0.5).Update(w)
	NewBindingSystem().Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	out := machineOf(t, w, e).Output()
	if !near(tr.X, out.Position.X-out.Displacement.X) || !near(tr.Z, out.Position.Z) {
		t.Fatalf("transform %+v does not follow output %+v", tr, out)
	}
	if tr.Yaw != math.Pi {
		t.Fatalf("yaw = %v, want pi when facing left", tr.Yaw)
	}
}
