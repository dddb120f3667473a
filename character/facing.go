package character

import "math"

type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// ResolveFacing checks left before right, so holding both faces left. With no
// horizontal intent the previous facing is kept.
func ResolveFacing(prev Facing, in Intent) Facing {
	switch {
	case in.Left:
		return FacingLeft
	case in.Right:
		return FacingRight
	case prev == FacingLeft:
		return FacingLeft
	default:
		return FacingRight
	}
}

// Yaw is the rotation about the up axis that mirrors the sprite.
func (f Facing) Yaw() float64 {
	if f == FacingLeft {
		return math.Pi
	}
	return 0
}
