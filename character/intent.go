package character

import "math"

// ActionNone is the action attempt sent when no action is requested.
const ActionNone = "none"

const (
	// PadDeadZone is the normalized pad magnitude below which no direction is
	// reported.
	PadDeadZone = 0.2
	// PadRunThreshold is the normalized pad magnitude above which Run is set.
	PadRunThreshold = 0.7
)

// Intent is what an input source wants a character to do this tick.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Run   bool

	// Action is ActionNone, empty, or an action catalog key.
	Action string
}

func (i Intent) Moving() bool {
	return i.Up || i.Down || i.Left || i.Right
}

func (i Intent) ActionAttempt() string {
	if i.Action == "" {
		return ActionNone
	}
	return i.Action
}

// Merge ORs the directions and Run of two intents. The first non-none action
// wins.
func (i Intent) Merge(o Intent) Intent {
	out := Intent{
		Up:     i.Up || o.Up,
		Down:   i.Down || o.Down,
		Left:   i.Left || o.Left,
		Right:  i.Right || o.Right,
		Run:    i.Run || o.Run,
		Action: i.ActionAttempt(),
	}
	if out.Action == ActionNone {
		out.Action = o.ActionAttempt()
	}
	return out
}

// IntentFromAxes converts a pad or stick vector into directions. x grows to
// the right and y grows upward; vectors longer than 1 are clamped.
func IntentFromAxes(x, y float64) Intent {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Intent{Action: ActionNone}
	}
	mag := math.Hypot(x, y)
	if mag > 1 {
		x /= mag
		y /= mag
		mag = 1
	}
	if mag < PadDeadZone {
		return Intent{Action: ActionNone}
	}
	// Eight sectors: an axis counts once it is outside the 22.5 degree
	// wedge around the other axis.
	edge := mag * math.Sin(math.Pi/8)
	return Intent{
		Up:     y >= edge,
		Down:   y <= -edge,
		Left:   x <= -edge,
		Right:  x >= edge,
		Run:    mag > PadRunThreshold,
		Action: ActionNone,
	}
}
