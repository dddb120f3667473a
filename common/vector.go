package common

// Vec3 is a world-space vector. X runs left/right, Y is up and Z runs
// toward the viewer, so "up" on the ground plane is -Z.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Vec2 is a normalized atlas coordinate.
type Vec2 struct {
	U, V float64
}
