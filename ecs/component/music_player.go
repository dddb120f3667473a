package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// MusicTrack is a registered track. Player is decoded on first play.
type MusicTrack struct {
	File   string
	Volume float64
	Loop   bool
	Player *audio.Player
}

// MusicPlayer is the global music state, kept on its own entity. One track
// plays at a time; switching fades the current track out before Next starts.
type MusicPlayer struct {
	Tracks map[string]*MusicTrack

	Current string
	// Volume is the current track's playback volume, lowered while fading.
	Volume float64

	Next     *MusicRequest
	FadeStep float64
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()

// MusicRequest asks the music system to switch tracks. It lives on a
// throwaway entity; when several are queued in one tick the last one wins.
// An empty Track stops playback and a zero Volume uses the track's own.
type MusicRequest struct {
	Track         string
	Volume        float64
	FadeOutFrames int
}

var MusicRequestComponent = NewComponent[MusicRequest]()
