package system

import (
	"testing"

	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

func TestFollow(t *testing.T) {
	tests := []struct {
		name         string
		smoothness   float64
		wantX, wantZ float64
	}{
		{name: "snap at zero", smoothness: 0, wantX: 10, wantZ: -4},
		{name: "snap at one", smoothness: 1, wantX: 10, wantZ: -4},
		{name: "half way", smoothness: 0.5, wantX: 5, wantZ: -2},
		{name: "trail", smoothness: 0.75, wantX: 2.5, wantZ: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, z := follow(0, 0, 10, -4, tc.smoothness)
			if !near(x, tc.wantX) || !near(z, tc.wantZ) {
				t.Fatalf("follow = (%v, %v), want (%v, %v)", x, z, tc.wantX, tc.wantZ)
			}
		})
	}
}

func TestCameraViewDefault(t *testing.T) {
	v := CameraView(ecs.NewWorld())
	if v.Zoom != 1 || v.Scale != defaultCameraScale || v.X != 0 || v.Z != 0 {
		t.Fatalf("default view = %+v", v)
	}
}

func TestProject(t *testing.T) {
	v := View{X: 1, Z: 1, Zoom: 2, Scale: 10}

	x, y := v.Project(1, 0, 1)
	if x != common.BaseWidth/2 || y != common.BaseHeight/2 {
		t.Fatalf("camera centre projects to (%v, %v)", x, y)
	}

	x, y = v.Project(2, 0.5, 0)
	if !near(x, common.BaseWidth/2+20) || !near(y, common.BaseHeight/2-20-10) {
		t.Fatalf("Project = (%v, %v)", x, y)
	}
}

func TestCameraSystemFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, Smoothness: 0.5, Scale: 64}); err != nil {
		t.Fatalf("add camera: %v", err)
	}
	if err := ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("add camera transform: %v", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatalf("add player tag: %v", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 4, Z: 8}); err != nil {
		t.Fatalf("add player transform: %v", err)
	}

	cs := NewCameraSystem()
	cs.Update(w)
	v := CameraView(w)
	if !near(v.X, 2) || !near(v.Z, 4) {
		t.Fatalf("after one tick view = %+v, want (2, 4)", v)
	}
	cs.Update(w)
	v = CameraView(w)
	if !near(v.X, 3) || !near(v.Z, 6) {
		t.Fatalf("after two ticks view = %+v, want (3, 6)", v)
	}
}
