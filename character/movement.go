package character

import "github.com/milk9111/cardwalk/common"

// Velocity maps directions to a ground-plane velocity. Each axis is one of
// -speed, 0 or speed; diagonals are not normalized.
func Velocity(in Intent, speed float64) common.Vec3 {
	var v common.Vec3
	if in.Up {
		v.Z -= speed
	}
	if in.Down {
		v.Z += speed
	}
	if in.Left {
		v.X -= speed
	}
	if in.Right {
		v.X += speed
	}
	return v
}

func Integrate(pos, vel common.Vec3, delta float64) common.Vec3 {
	return pos.Add(vel.Scale(delta))
}
