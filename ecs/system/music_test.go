package system

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

func musicWorld(t *testing.T) (*ecs.World, *component.MusicPlayer) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mp := &component.MusicPlayer{Tracks: map[string]*component.MusicTrack{
		"field": {File: "music/field.wav", Volume: 0.35, Loop: true},
		"town":  {File: "music/town.wav"},
	}}
	if err := ecs.Add(w, e, component.MusicPlayerComponent.Kind(), mp); err != nil {
		t.Fatalf("add music player: %v", err)
	}
	return w, mp
}

func failingMusic(calls *[]string) *MusicSystem {
	return &MusicSystem{load: func(path string) (*audio.Player, error) {
		*calls = append(*calls, path)
		return nil, errors.New("no audio device")
	}}
}

func requestCount(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ecs.Entity, *component.MusicRequest) { n++ })
	return n
}

func TestMusicSystemIgnoresUnknownTrack(t *testing.T) {
	w, mp := musicWorld(t)
	var calls []string
	m := failingMusic(&calls)

	RequestMusic(w, "boss")
	m.Update(w)

	if len(calls) != 0 {
		t.Fatalf("unknown track loaded %v", calls)
	}
	if mp.Current != "" || mp.Next != nil {
		t.Fatalf("player state changed: %+v", mp)
	}
	if n := requestCount(w); n != 0 {
		t.Fatalf("%d requests left in the world", n)
	}
}

func TestMusicSystemLoadFailureLeavesSilence(t *testing.T) {
	w, mp := musicWorld(t)
	var calls []string
	m := failingMusic(&calls)

	RequestMusic(w, " field ")
	m.Update(w)

	if len(calls) != 1 || calls[0] != "music/field.wav" {
		t.Fatalf("load calls = %v", calls)
	}
	if mp.Current != "" || mp.Volume != 0 || mp.Next != nil {
		t.Fatalf("player state after failed load: %+v", mp)
	}
	if CurrentMusic(w) != "" {
		t.Fatalf("CurrentMusic = %q", CurrentMusic(w))
	}
}

func TestStopMusicWhenSilent(t *testing.T) {
	w, mp := musicWorld(t)
	var calls []string
	m := failingMusic(&calls)

	StopMusic(w)
	m.Update(w)

	if len(calls) != 0 || mp.Current != "" || mp.Next != nil {
		t.Fatalf("stop changed state: calls=%v player=%+v", calls, mp)
	}
}

func TestMusicSystemLatestRequestWins(t *testing.T) {
	w, _ := musicWorld(t)
	var calls []string
	m := failingMusic(&calls)

	RequestMusic(w, "field")
	RequestMusic(w, "town")
	m.Update(w)

	if len(calls) != 1 || calls[0] != "music/town.wav" {
		t.Fatalf("load calls = %v, want only town", calls)
	}
}

func TestTrackVolume(t *testing.T) {
	tests := []struct {
		name  string
		track float64
		req   float64
		want  float64
	}{
		{name: "request wins", track: 0.35, req: 0.8, want: 0.8},
		{name: "track default", track: 0.35, want: 0.35},
		{name: "fallback", want: defaultMusicVolume},
		{name: "clamped", req: 3, want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := trackVolume(&component.MusicTrack{Volume: tc.track}, component.MusicRequest{Volume: tc.req})
			if got != tc.want {
				t.Fatalf("trackVolume = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCurrentMusicWithoutPlayer(t *testing.T) {
	if got := CurrentMusic(ecs.NewWorld()); got != "" {
		t.Fatalf("CurrentMusic = %q", got)
	}
}
