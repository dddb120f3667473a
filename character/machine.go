package character

import (
	"fmt"
	"log"
	"math"

	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/common"
)

var debug bool

// SetDebug enables low-severity logging such as sampling misses.
func SetDebug(enabled bool) {
	debug = enabled
}

// Output is what a render binding needs from one tick.
type Output struct {
	Displacement common.Vec3
	Atlas        common.Vec2
	FacingYaw    float64
	Position     common.Vec3
}

// Snapshot is a read-only view of a Machine for HUDs and tests.
type Snapshot struct {
	Profile  string
	State    State
	History  [2]State
	Clock    float64
	Facing   Facing
	Position common.Vec3
	Intent   Intent
}

func (s Snapshot) AnimationState() string { return s.State.Anim }

func (s Snapshot) Action() string { return s.State.ActionName() }

// Machine owns one character's mutable state. It is not safe for concurrent
// use; each character is ticked by exactly one caller.
type Machine struct {
	profile string
	clips   *anim.Library
	actions *ActionCatalog
	speed   float64

	state    State
	history  [2]State
	clock    float64
	intent   Intent
	facing   Facing
	position common.Vec3

	last    Output
	unknown map[string]struct{}
}

func NewMachine(p Profile, spawn common.Vec3) (*Machine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	facing := p.Facing
	if facing != FacingLeft {
		facing = FacingRight
	}
	m := &Machine{
		profile:  p.Name,
		clips:    p.Clips,
		actions:  p.Actions,
		speed:    sanitizeSpeed(p.Name, p.Stats.MoveSpeed),
		state:    Idle(),
		history:  [2]State{Idle(), Idle()},
		intent:   Intent{Action: ActionNone},
		facing:   facing,
		position: spawn,
	}
	m.last = m.sample()
	return m, nil
}

// SetIntent replaces the intent read by the next Update.
func (m *Machine) SetIntent(in Intent) {
	if m == nil {
		return
	}
	m.intent = in
}

// Update advances the machine by delta seconds. It never fails: a bad delta
// counts as zero and unknown actions are ignored.
func (m *Machine) Update(delta float64) Output {
	if m == nil {
		return Output{}
	}
	if !common.Finite(delta) || delta < 0 {
		delta = 0
	}

	m.clock += delta
	if math.IsInf(m.clock, 0) {
		m.clock = 0
	}

	step := Transition(m.state, m.intent, m.clock, m.actions)
	if step.Unknown != "" {
		m.reportUnknown(step.Unknown)
	}
	if step.Move {
		m.position = Integrate(m.position, Velocity(m.intent, m.speed), delta)
	}

	m.history = [2]State{m.state, step.State}
	m.state = step.State
	m.clock = step.Clock
	m.facing = ResolveFacing(m.facing, m.intent)

	m.last = m.sample()
	return m.last
}

// Output returns the result of the most recent Update.
func (m *Machine) Output() Output {
	if m == nil {
		return Output{}
	}
	return m.last
}

func (m *Machine) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		Profile:  m.profile,
		State:    m.state,
		History:  m.history,
		Clock:    m.clock,
		Facing:   m.facing,
		Position: m.position,
		Intent:   m.intent,
	}
}

// Rebind swaps in a reloaded profile. Position and facing are kept; an action
// the new catalog no longer knows drops the character back to idle.
func (m *Machine) Rebind(p Profile) error {
	if m == nil {
		return fmt.Errorf("character: rebind nil machine")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	m.profile = p.Name
	m.clips = p.Clips
	m.actions = p.Actions
	m.speed = sanitizeSpeed(p.Name, p.Stats.MoveSpeed)
	m.unknown = nil

	if m.state.Kind == KindAction {
		desc, ok := m.actions.Get(m.state.Action)
		if !ok || desc.Target != m.state.Anim {
			m.history = [2]State{m.state, Idle()}
			m.state = Idle()
			m.clock = 0
		}
	}
	m.last = m.sample()
	return nil
}

func (m *Machine) sample() Output {
	clip, _ := m.clips.Clip(m.state.Anim)
	frame, ok := anim.Lookup(clip, m.clock)
	if !ok && debug {
		log.Printf("character: profile %q: no frame in clip %q at %.3fs", m.profile, m.state.Anim, m.clock)
	}
	return Output{
		Displacement: frame.Displacement,
		Atlas:        frame.Atlas,
		FacingYaw:    m.facing.Yaw(),
		Position:     m.position,
	}
}

func (m *Machine) reportUnknown(name string) {
	if _, seen := m.unknown[name]; seen {
		return
	}
	if m.unknown == nil {
		m.unknown = make(map[string]struct{})
	}
	m.unknown[name] = struct{}{}
	log.Printf("character: profile %q: ignoring unknown action %q", m.profile, name)
}
