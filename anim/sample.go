package anim

import "math"

// CycleTime folds elapsed seconds into the clip's cycle. Repeating clips wrap,
// one-shot clips hold at the cycle end.
func CycleTime(c Clip, elapsed float64) float64 {
	if math.IsNaN(elapsed) || elapsed < 0 {
		elapsed = 0
	}
	if c.Cycle <= 0 {
		return 0
	}
	if c.Repeat {
		if math.IsInf(elapsed, 0) {
			return 0
		}
		return math.Mod(elapsed, c.Cycle)
	}
	return math.Min(elapsed, c.Cycle)
}

// Lookup returns the first frame whose window holds the cycle time. ok is
// false on a miss, in which case the zero frame is returned.
func Lookup(c Clip, elapsed float64) (Frame, bool) {
	i := FrameIndex(c, elapsed)
	if i < 0 {
		return Frame{}, false
	}
	return c.Frames[i], true
}

// FrameIndex is the position in c.Frames that Lookup picks, or -1.
func FrameIndex(c Clip, elapsed float64) int {
	t := CycleTime(c, elapsed)
	for i, f := range c.Frames {
		if f.contains(t) {
			return i
		}
	}
	return -1
}

// Sample is Lookup without the miss report.
func Sample(c Clip, elapsed float64) Frame {
	f, _ := Lookup(c, elapsed)
	return f
}
