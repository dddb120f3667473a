// Package anim holds time-indexed sprite-sheet clips and the sampler that maps
// a clip and an elapsed time to the frame to show.
package anim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/cardwalk/common"
)

var (
	ErrEmptyClipName = errors.New("anim: clip name is empty")
	ErrBadCycle      = errors.New("anim: cycle duration must be positive")
	ErrBadWindow     = errors.New("anim: frame window is empty or inverted")
	ErrDuplicateClip = errors.New("anim: duplicate clip")
)

// Frame is shown while the cycle time is inside [Start, End).
type Frame struct {
	Start        float64
	End          float64
	Displacement common.Vec3
	Atlas        common.Vec2
}

func (f Frame) contains(t float64) bool {
	return t >= f.Start && t < f.End
}

// Clip is an ordered run of frames. Frames are authored to partition
// [0, Cycle); gaps sample as the zero frame and on overlap the earlier frame
// wins.
type Clip struct {
	Name   string
	Frames []Frame
	Repeat bool
	Cycle  float64
}

func (c Clip) Validate() error {
	if c.Name == "" {
		return ErrEmptyClipName
	}
	if !common.Finite(c.Cycle) || c.Cycle <= 0 {
		return fmt.Errorf("clip %q: %w", c.Name, ErrBadCycle)
	}
	for i, f := range c.Frames {
		if !common.Finite(f.Start) || !common.Finite(f.End) || f.End <= f.Start {
			return fmt.Errorf("clip %q frame %d [%v, %v): %w", c.Name, i, f.Start, f.End, ErrBadWindow)
		}
	}
	return nil
}

// Library is the per-profile table of clips. It is read-only once built and
// may be shared by every character using the profile.
type Library struct {
	clips map[string]Clip
}

func NewLibrary(clips ...Clip) (*Library, error) {
	lib := &Library{clips: make(map[string]Clip, len(clips))}
	for _, c := range clips {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, ok := lib.clips[c.Name]; ok {
			return nil, fmt.Errorf("clip %q: %w", c.Name, ErrDuplicateClip)
		}
		frames := make([]Frame, len(c.Frames))
		copy(frames, c.Frames)
		c.Frames = frames
		lib.clips[c.Name] = c
	}
	return lib, nil
}

func (l *Library) Clip(name string) (Clip, bool) {
	if l == nil {
		return Clip{}, false
	}
	c, ok := l.clips[name]
	return c, ok
}

func (l *Library) Has(name string) bool {
	_, ok := l.Clip(name)
	return ok
}

// Names returns the clip names in sorted order.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.clips))
	for name := range l.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
