package component

// Track is the playback surface the music system needs.
type Track interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// MusicPlayer stores global music playback state on a dedicated ECS entity.
// The music system mutates this component; no playback state is kept on the system.
type MusicPlayer struct {
	Tracks map[string]Track

	CurrentTrack  string
	CurrentVolume float64
	TargetVolume  float64
	FadeStep      float64
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()

// MusicRequest is a one-shot request to fade a track in, or out when Track
// is empty.
type MusicRequest struct {
	Track      string
	Volume     float64
	FadeFrames int
}

var MusicRequestComponent = NewComponent[MusicRequest]()
