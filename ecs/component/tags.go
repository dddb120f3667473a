package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// NPCTag marks characters driven by a script instead of the local input.
type NPCTag struct{}

var NPCTagComponent = NewComponent[NPCTag]()

type SceneryTag struct{}

var SceneryTagComponent = NewComponent[SceneryTag]()
