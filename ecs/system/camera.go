package system

import (
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

const defaultCameraScale = 64.0

// CameraSystem eases the camera transform toward the player on the ground
// plane.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		if target, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			cs.targetEntity = target
		}
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	camTransform.X, camTransform.Z = follow(camTransform.X, camTransform.Z, target.X, target.Z, cam.Smoothness)
}

// follow moves (x, z) toward the target. Smoothness 0 snaps; values closer to
// 1 trail further behind.
func follow(x, z, tx, tz, smoothness float64) (float64, float64) {
	if smoothness <= 0 || smoothness >= 1 {
		return tx, tz
	}
	t := 1 - smoothness
	return common.Lerp(x, tx, t), common.Lerp(z, tz, t)
}

// View is the camera state needed to project world points to the screen.
type View struct {
	X, Z  float64
	Zoom  float64
	Scale float64
}

// CameraView reads the current camera, or a default centred on the origin.
func CameraView(w *ecs.World) View {
	v := View{Zoom: 1, Scale: defaultCameraScale}
	ent, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if cam, ok := ecs.Get(w, ent, component.CameraComponent.Kind()); ok {
		if cam.Zoom > 0 {
			v.Zoom = cam.Zoom
		}
		if cam.Scale > 0 {
			v.Scale = cam.Scale
		}
	}
	if t, ok := ecs.Get(w, ent, component.TransformComponent.Kind()); ok {
		v.X = t.X
		v.Z = t.Z
	}
	return v
}

// Project maps a world point to layout pixels. X runs right, Z runs down the
// screen and Y lifts the point up.
func (v View) Project(x, y, z float64) (float64, float64) {
	k := v.Scale * v.Zoom
	sx := common.BaseWidth/2 + (x-v.X)*k
	sy := common.BaseHeight/2 + (z-v.Z)*k - y*k
	return sx, sy
}
