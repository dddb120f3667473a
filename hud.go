package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 15

var padRingColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}

// HUD draws the touch pad and, in debug mode, one status line per
// character.
type HUD struct {
	face     ebtext.Face
	touching bool
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, w *ecs.World, ticks uint64, debug bool) {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		h.touching = true
	}
	h.drawPad(screen, w)
	if debug {
		h.drawLines(screen, 8, 8, debugLines(w, ticks))
	}
}

// drawPad shows the pad once the device has been touched.
func (h *HUD) drawPad(screen *ebiten.Image, w *ecs.World) {
	if !h.touching {
		return
	}
	cx, cy := system.PadCenter()
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(system.PadRadius), 2, padRingColor, true)

	kx, ky := cx, cy
	if ent, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if input, ok := ecs.Get(w, ent, component.InputComponent.Kind()); ok && input.PadActive {
			kx = cx + input.PadX*system.PadRadius
			ky = cy - input.PadY*system.PadRadius
		}
	}
	vector.DrawFilledCircle(screen, float32(kx), float32(ky), 28, padRingColor, true)
}

func (h *HUD) drawLines(screen *ebiten.Image, x, y float64, lines []string) {
	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i*hudLineHeight))
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, h.face, op)
	}
}

func debugLines(w *ecs.World, ticks uint64) []string {
	lines := []string{fmt.Sprintf("tick %d  TPS %.0f  FPS %.0f", ticks, ebiten.ActualTPS(), ebiten.ActualFPS())}
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		prefix := "npc"
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			prefix = "you"
		}
		lines = append(lines, prefix+" "+describe(ch.Machine.Snapshot()))
	})
	return lines
}

func describe(s character.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-7s %-7s action=%-7s clock=%.2f facing=%-5s pos=(%.2f, %.2f)",
		s.Profile, s.AnimationState(), s.Action(), s.Clock, s.Facing, s.Position.X, s.Position.Z)
	if s.History[0] != s.History[1] {
		fmt.Fprintf(&b, " <- %s", s.History[0].Anim)
	}
	return b.String()
}
