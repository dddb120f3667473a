package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is one entity's view of an image. Image may be a sheet shared with
// other entities; Source is private to this entity and selects the cell
// to draw.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()

// SpriteSheet describes how atlas offsets address Sprite.Image. FrameU and
// FrameV are the normalized size of one cell.
type SpriteSheet struct {
	Name   string
	FrameU float64
	FrameV float64
}

var SpriteSheetComponent = NewComponent[SpriteSheet]()

// RenderLayer orders drawing; lower layers draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
