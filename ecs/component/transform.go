package component

// Transform is the world placement of a visual. X/Z span the ground plane and
// Y is height above it.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
	Yaw    float64
}

var TransformComponent = NewComponent[Transform]()
