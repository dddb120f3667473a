package character

const (
	AnimIdle   = "idle"
	AnimMoving = "moving"
)

type Kind uint8

const (
	KindIdle Kind = iota
	KindMoving
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindMoving:
		return "moving"
	case KindAction:
		return "action"
	default:
		return "unknown"
	}
}

// State is the tagged character state: Idle, Moving or Action(name). Anim is
// the clip the state plays.
type State struct {
	Kind   Kind
	Action string
	Anim   string
}

func Idle() State { return State{Kind: KindIdle, Anim: AnimIdle} }

func Moving() State { return State{Kind: KindMoving, Anim: AnimMoving} }

func InAction(name string, desc ActionDescriptor) State {
	return State{Kind: KindAction, Action: name, Anim: desc.Target}
}

// ActionName is ActionNormal outside of an action.
func (s State) ActionName() string {
	if s.Kind == KindAction {
		return s.Action
	}
	return ActionNormal
}

// Step is the outcome of one Transition.
type Step struct {
	State State
	// Clock is the state-local clock after any reset.
	Clock float64
	// ResetClock is set when State differs from the previous tick's state.
	ResetClock bool
	// Move is false while an action owned the character during this tick.
	Move bool
	// Completed is set when an action ran past its end time this tick.
	Completed bool
	// Unknown names an attempted action missing from the catalog.
	Unknown string
}

// Transition computes the next state from the previous tick's state, this
// tick's intent and the already advanced clock. It applies, in order:
// locomotion selection, action entry, the clock reset on state change and
// action completion.
//
// The clock resets whenever the state changes, so an action that interrupts
// another action playing the same clip still restarts that clip.
func Transition(prev State, in Intent, clock float64, actions *ActionCatalog) Step {
	next := prev
	if next.Kind != KindAction {
		if in.Moving() {
			next = Moving()
		} else {
			next = Idle()
		}
	}

	var step Step
	if attempt := in.ActionAttempt(); attempt != ActionNone && attempt != next.ActionName() {
		desc, ok := actions.Get(attempt)
		switch {
		case !ok:
			step.Unknown = attempt
		case next.Kind != KindAction:
			next = InAction(attempt, desc)
		default:
			if active, ok := actions.Get(next.Action); !ok || desc.Preempts(active) {
				next = InAction(attempt, desc)
			}
		}
	}

	step.Move = next.Kind != KindAction

	if next != prev {
		clock = 0
	}

	if next.Kind == KindAction {
		desc, ok := actions.Get(next.Action)
		if !ok || clock > desc.EndTime {
			next = Idle()
			clock = 0
			step.Completed = true
		}
	}

	step.State = next
	step.Clock = clock
	step.ResetClock = next != prev
	return step
}
