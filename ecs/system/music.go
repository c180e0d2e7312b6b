package system

import (
	"errors"
	"log"
	"strings"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

const (
	defaultMusicVolume     = 1.0
	defaultMusicFadeFrames = 60
)

var errNoLoader = errors.New("music: no track loader")

// TrackLoader opens a track by asset name.
type TrackLoader func(name string) (component.Track, error)

// MusicSystem fades tracks in and out. Only one track plays at a time; a
// new request cuts the previous one.
type MusicSystem struct {
	load TrackLoader
}

func NewMusicSystem(load TrackLoader) *MusicSystem {
	return &MusicSystem{load: load}
}

func RequestMusic(w *ecs.World, track string, volume float64, fadeFrames int) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), &component.MusicRequest{
		Track:      track,
		Volume:     volume,
		FadeFrames: fadeFrames,
	})
}

func StopMusic(w *ecs.World) {
	RequestMusic(w, "", 0, defaultMusicFadeFrames)
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var latest *component.MusicRequest
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		r := *req
		latest = &r
		ecs.DestroyEntity(w, ent)
	})

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	if player.Tracks == nil {
		player.Tracks = make(map[string]component.Track)
	}

	if latest != nil {
		m.applyRequest(player, *latest)
	}
	m.step(player)
}

func (m *MusicSystem) applyRequest(player *component.MusicPlayer, req component.MusicRequest) {
	fade := req.FadeFrames
	if fade <= 0 {
		fade = defaultMusicFadeFrames
	}
	track := strings.TrimSpace(req.Track)

	if track == "" {
		player.TargetVolume = 0
		player.FadeStep = player.CurrentVolume / float64(fade)
		return
	}

	volume := req.Volume
	if volume <= 0 {
		volume = defaultMusicVolume
	}
	if volume > 1 {
		volume = 1
	}

	if track != player.CurrentTrack {
		if cur := m.current(player); cur != nil {
			cur.Pause()
		}
		next, err := m.trackFor(player, track)
		if err != nil {
			log.Printf("music: load %q: %v", track, err)
			player.CurrentTrack = ""
			return
		}
		player.CurrentTrack = track
		player.CurrentVolume = 0
		_ = next.Rewind()
		next.SetVolume(0)
		next.Play()
	}
	player.TargetVolume = volume
	player.FadeStep = volume / float64(fade)
}

func (m *MusicSystem) step(player *component.MusicPlayer) {
	cur := m.current(player)
	if cur == nil || player.FadeStep <= 0 {
		return
	}

	switch {
	case player.CurrentVolume < player.TargetVolume:
		player.CurrentVolume = min(player.CurrentVolume+player.FadeStep, player.TargetVolume)
	case player.CurrentVolume > player.TargetVolume:
		player.CurrentVolume = max(player.CurrentVolume-player.FadeStep, player.TargetVolume)
	}
	cur.SetVolume(player.CurrentVolume)

	if player.CurrentVolume == player.TargetVolume {
		player.FadeStep = 0
		if player.TargetVolume == 0 {
			cur.Pause()
			player.CurrentTrack = ""
		}
	}
}

func (m *MusicSystem) current(player *component.MusicPlayer) component.Track {
	if player.CurrentTrack == "" {
		return nil
	}
	return player.Tracks[player.CurrentTrack]
}

func (m *MusicSystem) trackFor(player *component.MusicPlayer, name string) (component.Track, error) {
	if t, ok := player.Tracks[name]; ok && t != nil {
		return t, nil
	}
	if m.load == nil {
		return nil, errNoLoader
	}
	t, err := m.load(name)
	if err != nil {
		return nil, err
	}
	player.Tracks[name] = t
	return t, nil
}
