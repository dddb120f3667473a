package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
)

// Scripts define update(engine, state). engine exposes the character's
// clock and placement plus press/act to build the intent; state is a map
// kept across ticks.
const scriptDispatch = `
update(__engine, __state)
`

type scriptRuntime struct {
	path      string
	compiled  *tengo.Compiled
	stateData *tengo.Map
	failed    bool
}

// ScriptSystem turns tengo scripts into intents for NPC characters.
type ScriptSystem struct {
	delta    float64
	sources  map[string]*tengo.Compiled
	runtimes map[ecs.Entity]*scriptRuntime
	load     func(path string) ([]byte, error)
}

func NewScriptSystem(delta float64) *ScriptSystem {
	return &ScriptSystem{
		delta:    delta,
		sources:  map[string]*tengo.Compiled{},
		runtimes: map[ecs.Entity]*scriptRuntime{},
		load:     prefabs.LoadScript,
	}
}

// Invalidate drops compiled copies of the script at path so the next tick
// recompiles it. State kept by running scripts is reset.
func (s *ScriptSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	clean := scriptKey(path)
	delete(s.sources, clean)
	for ent, rt := range s.runtimes {
		if scriptKey(rt.path) == clean {
			delete(s.runtimes, ent)
		}
	}
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for ent := range s.runtimes {
		if !ecs.IsAlive(w, ent) {
			delete(s.runtimes, ent)
		}
	}

	ecs.ForEach3(w, component.ScriptComponent.Kind(), component.CharacterComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, sc *component.Script, ch *component.Character, input *component.Input) {
		sc.Elapsed += s.delta

		rt, err := s.runtime(e, sc.Path)
		if err != nil {
			log.Printf("script: entity=%d load %q: %v", e, sc.Path, err)
			return
		}
		if rt.failed {
			return
		}

		intent := character.Intent{Action: character.ActionNone}
		engine := buildScriptEngine(sc.Elapsed, ch.Machine.Snapshot(), &intent)
		if err := rt.run(engine); err != nil {
			log.Printf("script: entity=%d %q: %v", e, sc.Path, err)
			rt.failed = true
			input.Intent = character.Intent{Action: character.ActionNone}
			return
		}
		input.Intent = intent
	})
}

func (s *ScriptSystem) runtime(e ecs.Entity, path string) (*scriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.path == path {
		return rt, nil
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}

	key := scriptKey(path)
	src, ok := s.sources[key]
	if !ok {
		compiled, err := s.compile(path)
		if err != nil {
			// Cache the failure as a failed runtime so it is logged once.
			s.runtimes[e] = &scriptRuntime{path: path, failed: true}
			return nil, err
		}
		s.sources[key] = compiled
		src = compiled
	}

	rt := &scriptRuntime{
		path:      path,
		compiled:  src.Clone(),
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.runtimes[e] = rt
	return rt, nil
}

func (s *ScriptSystem) compile(path string) (*tengo.Compiled, error) {
	scriptBytes, err := s.load(path)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + scriptDispatch
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	return script.Compile()
}

func (rt *scriptRuntime) run(engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildScriptEngine(elapsed float64, snap character.Snapshot, intent *character.Intent) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"elapsed": &tengo.Float{Value: elapsed},
		"x":       &tengo.Float{Value: snap.Position.X},
		"z":       &tengo.Float{Value: snap.Position.Z},
		"state":   &tengo.String{Value: snap.AnimationState()},
		"action":  &tengo.String{Value: snap.Action()},
		"facing":  &tengo.String{Value: string(snap.Facing)},
		"clock":   &tengo.Float{Value: snap.Clock},
	}

	values["press"] = &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
		for _, arg := range args {
			switch strings.TrimSpace(objectAsString(arg)) {
			case "up":
				intent.Up = true
			case "down":
				intent.Down = true
			case "left":
				intent.Left = true
			case "right":
				intent.Right = true
			case "run":
				intent.Run = true
			default:
				return tengo.FalseValue, nil
			}
		}
		return tengo.TrueValue, nil
	}}

	values["act"] = &tengo.UserFunction{Name: "act", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		intent.Action = name
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func scriptKey(path string) string {
	s := strings.ReplaceAll(path, "\\", "/")
	if idx := strings.LastIndex(s, "scripts/"); idx >= 0 {
		return s[idx+len("scripts/"):]
	}
	return s
}
