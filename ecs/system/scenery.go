package system

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
	"golang.org/x/image/colornames"
)

// Placement is one scattered prop on the ground plane.
type Placement struct {
	Prop int
	X    float64
	Z    float64
}

// PlaceScenery scatters props inside spec.Radius, rejecting any whose
// footprint overlaps a placed prop or one of the kept-clear points.
func PlaceScenery(spec prefabs.ScenerySpec, rng *rand.Rand, keepClear []cp.Vector) []Placement {
	if rng == nil || len(spec.Props) == 0 || spec.Count <= 0 || spec.Radius <= 0 {
		return nil
	}
	tries := spec.MaxTries
	if tries <= 0 {
		tries = 20
	}

	blocked := make([]cp.BB, 0, spec.Count+len(keepClear))
	for _, p := range keepClear {
		blocked = append(blocked, cp.NewBBForCircle(p, spec.Clearance))
	}

	out := make([]Placement, 0, spec.Count)
	for len(out) < spec.Count {
		idx := pickProp(spec.Props, rng)
		prop := spec.Props[idx]
		placed := false
		for try := 0; try < tries; try++ {
			angle := rng.Float64() * 2 * math.Pi
			dist := spec.Radius * math.Sqrt(rng.Float64())
			center := cp.Vector{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
			bb := cp.NewBBForExtents(center, prop.Footprint, prop.Footprint)
			if overlapsAny(bb, blocked) {
				continue
			}
			blocked = append(blocked, bb)
			out = append(out, Placement{Prop: idx, X: center.X, Z: center.Y})
			placed = true
			break
		}
		if !placed {
			// The field is full enough; stop instead of spinning.
			break
		}
	}
	return out
}

func overlapsAny(bb cp.BB, others []cp.BB) bool {
	for _, o := range others {
		if bb.Intersects(o) {
			return true
		}
	}
	return false
}

func pickProp(props []prefabs.PropSpec, rng *rand.Rand) int {
	total := 0
	for _, p := range props {
		total += max(p.Weight, 1)
	}
	n := rng.Intn(total)
	for i, p := range props {
		n -= max(p.Weight, 1)
		if n < 0 {
			return i
		}
	}
	return len(props) - 1
}

// SpawnScenery creates a sprite entity per placement. Props of one kind share
// an image.
func SpawnScenery(w *ecs.World, spec prefabs.ScenerySpec, placements []Placement) error {
	images := make(map[int]*ebiten.Image)
	for _, pl := range placements {
		if pl.Prop < 0 || pl.Prop >= len(spec.Props) {
			continue
		}
		prop := spec.Props[pl.Prop]
		img, ok := images[pl.Prop]
		if !ok {
			img = propImage(prop)
			images[pl.Prop] = img
		}

		ent := ecs.CreateEntity(w)
		if err := ecs.Add(w, ent, component.SceneryTagComponent.Kind(), &component.SceneryTag{}); err != nil {
			return err
		}
		if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: pl.X, Z: pl.Z, ScaleX: 1, ScaleY: 1}); err != nil {
			return err
		}
		bounds := img.Bounds()
		if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{
			Image:   img,
			OriginX: float64(bounds.Dx()) / 2,
			OriginY: float64(bounds.Dy()),
		}); err != nil {
			return err
		}
		if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}); err != nil {
			return err
		}
	}
	return nil
}

func propImage(prop prefabs.PropSpec) *ebiten.Image {
	w := max(int(prop.Width), 4)
	h := max(int(prop.Height), 4)
	img := ebiten.NewImage(w, h)

	var fill color.Color = colornames.Olivedrab
	if prop.Color != nil && prop.Color.Color != nil {
		fill = prop.Color.Color
	}
	fw, fh := float32(w), float32(h)

	switch prop.Name {
	case "tree":
		vector.DrawFilledRect(img, fw/2-fw/10, fh*0.6, fw/5, fh*0.4, colornames.Saddlebrown, false)
		vector.DrawFilledCircle(img, fw/2, fh*0.35, min(fw, fh*0.7)/2, fill, true)
	default:
		vector.DrawFilledCircle(img, fw/2, fh-fh/2, min(fw, fh)/2, fill, true)
	}
	return img
}
