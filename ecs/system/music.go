package system

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/cardwalk/assets"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

const (
	defaultMusicVolume     = 1.0
	defaultMusicFadeFrames = 30
)

// MusicSystem plays one named track at a time, fading out the current track
// before switching.
type MusicSystem struct {
	load func(path string) (*audio.Player, error)
}

func NewMusicSystem() *MusicSystem {
	return &MusicSystem{load: assets.LoadAudioPlayer}
}

// RequestMusic switches to a registered track at its own volume.
func RequestMusic(w *ecs.World, track string) {
	RequestMusicWithOptions(w, &component.MusicRequest{Track: track, FadeOutFrames: defaultMusicFadeFrames})
}

func RequestMusicWithOptions(w *ecs.World, req *component.MusicRequest) {
	if w == nil || req == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), req)
}

// StopMusic fades the current track out.
func StopMusic(w *ecs.World) {
	RequestMusicWithOptions(w, &component.MusicRequest{FadeOutFrames: defaultMusicFadeFrames})
}

// CurrentMusic names the playing track, or "".
func CurrentMusic(w *ecs.World) string {
	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return ""
	}
	mp, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return ""
	}
	return mp.Current
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	req := takeMusicRequest(w)

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	mp, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}

	if req != nil {
		m.request(mp, *req)
	}
	if mp.Next != nil {
		m.fade(mp)
		return
	}
	loopCurrent(mp)
}

// takeMusicRequest removes every queued request and returns the last one.
func takeMusicRequest(w *ecs.World) *component.MusicRequest {
	var (
		latest *component.MusicRequest
		done   []ecs.Entity
	)
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		done = append(done, ent)
		r := *req
		latest = &r
	})
	for _, ent := range done {
		ecs.DestroyEntity(w, ent)
	}
	return latest
}

func (m *MusicSystem) request(mp *component.MusicPlayer, req component.MusicRequest) {
	req.Track = strings.TrimSpace(req.Track)
	if req.Track != "" {
		if _, ok := mp.Tracks[req.Track]; !ok {
			log.Printf("music: unknown track %q", req.Track)
			return
		}
	}

	cur := playingTrack(mp)
	if cur == nil {
		mp.Next = nil
		m.start(mp, req)
		return
	}
	if req.Track == mp.Current && mp.Next == nil {
		mp.Volume = trackVolume(cur, req)
		cur.Player.SetVolume(mp.Volume)
		if !cur.Player.IsPlaying() {
			cur.Player.Rewind()
			cur.Player.Play()
		}
		return
	}

	frames := req.FadeOutFrames
	if frames <= 0 {
		frames = defaultMusicFadeFrames
	}
	mp.Next = &req
	mp.FadeStep = mp.Volume / float64(frames)
	if mp.FadeStep <= 0 {
		mp.FadeStep = 1
	}
}

// fade lowers the current track one step and starts Next once it is silent.
func (m *MusicSystem) fade(mp *component.MusicPlayer) {
	if cur := playingTrack(mp); cur != nil {
		mp.Volume -= mp.FadeStep
		if mp.Volume > 0 {
			cur.Player.SetVolume(mp.Volume)
			return
		}
		cur.Player.SetVolume(0)
		cur.Player.Pause()
		cur.Player.Rewind()
	}
	next := *mp.Next
	mp.Next = nil
	mp.FadeStep = 0
	m.start(mp, next)
}

// start plays req.Track from the top. A stop request, or a track that fails
// to load, leaves the player silent.
func (m *MusicSystem) start(mp *component.MusicPlayer, req component.MusicRequest) {
	mp.Current = ""
	mp.Volume = 0
	if req.Track == "" {
		return
	}
	t := mp.Tracks[req.Track]
	if t.Player == nil {
		load := m.load
		if load == nil {
			load = assets.LoadAudioPlayer
		}
		p, err := load(t.File)
		if err != nil {
			log.Printf("music: load %q (%s): %v", req.Track, t.File, err)
			return
		}
		t.Player = p
	}

	mp.Current = req.Track
	mp.Volume = trackVolume(t, req)
	t.Player.Rewind()
	t.Player.SetVolume(mp.Volume)
	t.Player.Play()
}

func loopCurrent(mp *component.MusicPlayer) {
	t := playingTrack(mp)
	if t == nil || !t.Loop || t.Player.IsPlaying() {
		return
	}
	t.Player.Rewind()
	t.Player.SetVolume(mp.Volume)
	t.Player.Play()
}

// playingTrack returns the current track when it has a player.
func playingTrack(mp *component.MusicPlayer) *component.MusicTrack {
	if mp.Current == "" {
		return nil
	}
	t, ok := mp.Tracks[mp.Current]
	if !ok || t == nil || t.Player == nil {
		return nil
	}
	return t
}

func trackVolume(t *component.MusicTrack, req component.MusicRequest) float64 {
	v := req.Volume
	if v <= 0 {
		v = t.Volume
	}
	if v <= 0 {
		v = defaultMusicVolume
	}
	return min(v, 1)
}
