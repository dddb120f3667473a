package system

import (
	"math"

	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

// BindingSystem copies each machine's output onto the entity's render
// components: placement and yaw onto Transform, the atlas cell onto the
// entity's own Sprite.Source.
type BindingSystem struct{}

func NewBindingSystem() *BindingSystem {
	return &BindingSystem{}
}

func (b *BindingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ch *component.Character, t *component.Transform) {
		if ch.Machine == nil {
			return
		}
		out := ch.Machine.Output()
		applyOutput(t, out)

		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return
		}
		sprite.FacingLeft = math.Cos(out.FacingYaw) < 0

		sheet, ok := ecs.Get(w, e, component.SpriteSheetComponent.Kind())
		if !ok || sprite.Image == nil {
			return
		}
		bounds := sprite.Image.Bounds()
		sprite.Source = anim.AtlasRect(out.Atlas, sheet.FrameU, sheet.FrameV, bounds)
		sprite.UseSource = true
	})
}

func applyOutput(t *component.Transform, out character.Output) {
	d := localToWorld(out.Displacement, out.FacingYaw)
	t.X = out.Position.X + d.X
	t.Y = out.Position.Y + d.Y
	t.Z = out.Position.Z + d.Z
	t.Yaw = out.FacingYaw
}

// localToWorld rotates a character-local offset about the up axis.
func localToWorld(d common.Vec3, yaw float64) common.Vec3 {
	sin, cos := math.Sincos(yaw)
	return common.Vec3{
		X: d.X*cos + d.Z*sin,
		Y: d.Y,
		Z: -d.X*sin + d.Z*cos,
	}
}
