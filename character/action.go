package character

import (
	"fmt"
	"sort"

	"github.com/milk9111/cardwalk/common"
)

// ActionNormal is the action mode while the character is in locomotion.
const ActionNormal = "normal"

// ActionDescriptor describes how an action plays and how it competes with
// other actions.
type ActionDescriptor struct {
	Target   string
	EndTime  float64
	Force    bool
	Priority int
}

// Preempts reports whether d may replace the active action. A forced action
// only yields to another forced action; otherwise the higher priority wins
// and equal priority replaces a non-forced action.
func (d ActionDescriptor) Preempts(active ActionDescriptor) bool {
	if active.Force && !d.Force {
		return false
	}
	if d.Priority != active.Priority {
		return d.Priority > active.Priority
	}
	return !active.Force
}

// ActionCatalog maps action names to their descriptors.
type ActionCatalog struct {
	actions map[string]ActionDescriptor
}

func NewActionCatalog(actions map[string]ActionDescriptor) (*ActionCatalog, error) {
	c := &ActionCatalog{actions: make(map[string]ActionDescriptor, len(actions))}
	for name, desc := range actions {
		if name == "" || name == ActionNormal || name == ActionNone {
			return nil, &ConfigError{Kind: "action", Name: name, Err: ErrReservedName}
		}
		if desc.Target == "" {
			return nil, &ConfigError{Kind: "action", Name: name, Err: fmt.Errorf("%w: empty target", ErrUnknownClip)}
		}
		if !common.Finite(desc.EndTime) || desc.EndTime < 0 {
			return nil, &ConfigError{Kind: "action", Name: name, Err: fmt.Errorf("%w: %v", ErrBadEndTime, desc.EndTime)}
		}
		c.actions[name] = desc
	}
	return c, nil
}

func (c *ActionCatalog) Get(name string) (ActionDescriptor, bool) {
	if c == nil {
		return ActionDescriptor{}, false
	}
	d, ok := c.actions[name]
	return d, ok
}

func (c *ActionCatalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

func (c *ActionCatalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAction returns a ConfigError when name is neither ActionNone nor a key
// of the catalog. Input bindings are checked with it at build time.
func (c *ActionCatalog) CheckAction(profile, name string) error {
	if name == "" || name == ActionNone || c.Has(name) {
		return nil
	}
	return &ConfigError{Profile: profile, Kind: "action", Name: name, Err: ErrUnknownAction}
}
