package character

import (
	"testing"

	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/common"
)

// evenClip builds a clip of n equal frames on sheet row v.
func evenClip(name string, n int, frameLen float64, v float64, repeat bool) anim.Clip {
	c := anim.Clip{Name: name, Repeat: repeat, Cycle: float64(n) * frameLen}
	for i := 0; i < n; i++ {
		c.Frames = append(c.Frames, anim.Frame{
			Start: float64(i) * frameLen,
			End:   float64(i+1) * frameLen,
			Atlas: common.Vec2{U: float64(i) * 0.25, V: v},
		})
	}
	return c
}

func testLibrary(t *testing.T) *anim.Library {
	t.Helper()
	lib, err := anim.NewLibrary(
		evenClip(AnimIdle, 4, 0.2, 0.75, true),
		evenClip(AnimMoving, 4, 0.15, 0.5, true),
		evenClip("attack", 4, 0.1, 0.25, false),
		evenClip("cast", 3, 0.2, 0, false),
		evenClip("dodge", 2, 0.1, 0, false),
	)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func testCatalog(t *testing.T) *ActionCatalog {
	t.Helper()
	cat, err := NewActionCatalog(map[string]ActionDescriptor{
		"attack": {Target: "attack", EndTime: 0.4, Priority: 1},
		"cast":   {Target: "cast", EndTime: 0.6, Force: true, Priority: 2},
		"dodge":  {Target: "dodge", EndTime: 0.2, Priority: 3},
	})
	if err != nil {
		t.Fatalf("NewActionCatalog: %v", err)
	}
	return cat
}

func testProfile(t *testing.T, speed float64) Profile {
	t.Helper()
	p := DefaultProfile()
	p.Stats.MoveSpeed = speed
	p.Clips = testLibrary(t)
	p.Actions = testCatalog(t)
	return p
}

func newTestMachine(t *testing.T, speed float64) *Machine {
	t.Helper()
	m, err := NewMachine(testProfile(t, speed), common.Vec3{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

func clipFrame(t *testing.T, m *Machine, clip string, i int) anim.Frame {
	t.Helper()
	c, ok := m.clips.Clip(clip)
	if !ok {
		t.Fatalf("clip %q missing", clip)
	}
	return c.Frames[i]
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
