package component

type Camera struct {
	Zoom       float64
	Smoothness float64
	// Pixels per world unit on the ground plane.
	Scale float64
}

var CameraComponent = NewComponent[Camera]()
