package character

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownClip   = errors.New("character: unknown clip")
	ErrUnknownAction = errors.New("character: unknown action")
	ErrReservedName  = errors.New("character: reserved action name")
	ErrBadEndTime    = errors.New("character: action end time must be finite and non-negative")
)

// ConfigError reports a name in a profile that does not resolve. It is only
// ever returned while building catalogs or machines.
type ConfigError struct {
	Profile string
	Kind    string
	Name    string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("character: profile %q: %s %q: %v", e.Profile, e.Kind, e.Name, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
