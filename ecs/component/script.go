package component

// Script drives an entity's Input from a tengo script.
type Script struct {
	Path    string
	Elapsed float64
}

var ScriptComponent = NewComponent[Script]()
