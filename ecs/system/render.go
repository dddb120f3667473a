package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

var shadowColor = color.RGBA{A: 70}

type RenderSystem struct {
	entities []ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders every sprite by layer, then by depth so characters further
// down the field overlap the ones behind them.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view := CameraView(w)
	r.entities = r.entities[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		r.entities = append(r.entities, e)
	})
	sortForDraw(w, r.entities)

	for _, e := range r.entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		sx, sy := view.Project(t.X, t.Y, t.Z)
		if ecs.Has(w, e, component.CharacterComponent.Kind()) {
			gx, gy := view.Project(t.X, 0, t.Z)
			vector.DrawFilledCircle(screen, float32(gx), float32(gy), float32(10*view.Zoom), shadowColor, true)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		scaleX := t.ScaleX
		if scaleX == 0 {
			scaleX = 1
		}
		if s.FacingLeft {
			scaleX = -scaleX
		}
		scaleY := t.ScaleY
		if scaleY == 0 {
			scaleY = 1
		}

		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Scale(view.Zoom, view.Zoom)
		op.GeoM.Translate(sx, sy)

		screen.DrawImage(img, op)
	}
}

func sortForDraw(w *ecs.World, entities []ecs.Entity) {
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	depth := func(e ecs.Entity) float64 {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return t.Z
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		di, dj := depth(entities[i]), depth(entities[j])
		if di != dj {
			return di < dj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}
