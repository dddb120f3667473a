// Command clipview plays a profile's clips from its sprite sheet.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/assets"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/prefabs"
)

const viewSize = 512

type viewer struct {
	profile character.Profile
	sheet   *ebiten.Image
	frameU  float64
	frameV  float64
	names   []string
	current int
	elapsed float64
	scale   float64
	left    bool
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.current = (v.current + 1) % len(v.names)
		v.elapsed = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.current = (v.current + len(v.names) - 1) % len(v.names)
		v.elapsed = 0
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.elapsed = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		v.left = !v.left
	}
	v.elapsed += 1 / float64(ebiten.TPS())
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	clip, _ := v.profile.Clips.Clip(v.names[v.current])
	frame, ok := anim.Lookup(clip, v.elapsed)
	idx := anim.FrameIndex(clip, v.elapsed)

	if ok {
		src := anim.AtlasRect(frame.Atlas, v.frameU, v.frameV, v.sheet.Bounds())
		img := v.sheet.SubImage(src).(*ebiten.Image)
		fw := float64(src.Dx())
		fh := float64(src.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-fw/2, -fh/2)
		sx := v.scale
		if v.left {
			sx = -sx
		}
		op.GeoM.Scale(sx, v.scale)
		op.GeoM.Translate(viewSize/2+frame.Displacement.X*64*sx, viewSize/2-frame.Displacement.Y*64*v.scale)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}

	mode := "one-shot"
	if clip.Repeat {
		mode = "repeat"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s / %s (%s)\nt=%.2f cycle t=%.2f frame=%d\n<- -> clip  space restart  F flip",
		v.profile.Name, clip.Name, mode, v.elapsed, anim.CycleTime(clip, v.elapsed), idx))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	profileName := flag.String("profile", "love", "profile name in prefabs/profiles")
	clipName := flag.String("clip", character.AnimIdle, "clip to start on")
	scale := flag.Float64("scale", 4, "pixel scale")
	flag.Parse()

	p, spec, err := prefabs.LoadProfile(*profileName)
	if err != nil {
		log.Fatal(err)
	}
	cols := int(math.Round(1 / spec.Sheet.FrameU))
	rows := int(math.Round(1 / spec.Sheet.FrameV))

	v := &viewer{
		profile: p,
		sheet:   assets.Sheet(spec.Sheet.Image, max(cols, 1), max(rows, 1)),
		frameU:  spec.Sheet.FrameU,
		frameV:  spec.Sheet.FrameV,
		names:   p.Clips.Names(),
		scale:   *scale,
	}
	for i, name := range v.names {
		if name == *clipName {
			v.current = i
		}
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("clipview: " + p.Name)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
