package anim

import (
	"image"
	"math"

	"github.com/milk9111/cardwalk/common"
)

// AtlasRect maps a normalized atlas offset to the pixel rectangle of one cell
// inside bounds. frameU and frameV are the normalized cell size. v is
// measured from the bottom edge, so the top row of a four-row sheet has
// v = 0.75. The result is clipped to bounds.
func AtlasRect(atlas common.Vec2, frameU, frameV float64, bounds image.Rectangle) image.Rectangle {
	if !common.Finite(frameU) || frameU <= 0 || frameU > 1 {
		frameU = 1
	}
	if !common.Finite(frameV) || frameV <= 0 || frameV > 1 {
		frameV = 1
	}
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	x0 := int(math.Round(atlas.U * w))
	y0 := int(math.Round((1 - atlas.V - frameV) * h))
	r := image.Rect(x0, y0, x0+int(math.Round(frameU*w)), y0+int(math.Round(frameV*h)))
	return r.Add(bounds.Min).Intersect(bounds)
}
