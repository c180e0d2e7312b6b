package system_test

import (
	"errors"
	"testing"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/ecs/entity"
	"github.com/milk9111/memorystars/ecs/system"
)

type fakeTrack struct {
	playing  bool
	volume   float64
	rewinds  int
	volCalls int
}

func (f *fakeTrack) Play()               { f.playing = true }
func (f *fakeTrack) Pause()              { f.playing = false }
func (f *fakeTrack) Rewind() error       { f.rewinds++; return nil }
func (f *fakeTrack) SetVolume(v float64) { f.volume = v; f.volCalls++ }
func (f *fakeTrack) IsPlaying() bool     { return f.playing }

func newMusicWorld(t *testing.T) (*ecs.World, *component.MusicPlayer, map[string]*fakeTrack, *ecs.Scheduler) {
	t.Helper()
	w := ecs.NewWorld()
	ent, err := entity.NewMusicPlayer(w)
	if err != nil {
		t.Fatalf("music player: %v", err)
	}
	player, _ := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())

	tracks := map[string]*fakeTrack{}
	load := func(name string) (component.Track, error) {
		if name == "missing" {
			return nil, errors.New("not found")
		}
		tr := &fakeTrack{}
		tracks[name] = tr
		return tr, nil
	}
	return w, player, tracks, ecs.NewScheduler(system.NewMusicSystem(load))
}

func runTicks(w *ecs.World, s *ecs.Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Update(w)
	}
}

func TestMusicFadesInAndOut(t *testing.T) {
	w, player, tracks, sched := newMusicWorld(t)

	system.RequestMusic(w, "ambient", 0.5, 10)
	runTicks(w, sched, 1)
	track := tracks["ambient"]
	if track == nil || !track.playing || track.rewinds != 1 {
		t.Fatalf("expected the track to start from the beginning")
	}
	if track.volume <= 0 || track.volume >= 0.5 {
		t.Fatalf("expected a partial fade after one tick, got %v", track.volume)
	}

	runTicks(w, sched, 12)
	if player.CurrentVolume != 0.5 || track.volume != 0.5 || player.FadeStep != 0 {
		t.Fatalf("expected fade to settle at 0.5, got %+v", player)
	}

	system.StopMusic(w)
	runTicks(w, sched, 65)
	if track.playing || player.CurrentTrack != "" || player.CurrentVolume != 0 {
		t.Fatalf("expected the track paused after fading out, got %+v", player)
	}
}

func TestMusicSwitchAndLoadFailure(t *testing.T) {
	tests := []struct {
		name    string
		second  string
		current string
	}{
		{"switch", "rain", "rain"},
		{"missing", "missing", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, player, tracks, sched := newMusicWorld(t)
			system.RequestMusic(w, "ambient", 1, 5)
			runTicks(w, sched, 10)

			system.RequestMusic(w, tc.second, 1, 5)
			runTicks(w, sched, 1)
			if tracks["ambient"].playing {
				t.Fatalf("previous track should be paused")
			}
			if player.CurrentTrack != tc.current {
				t.Fatalf("expected current track %q, got %q", tc.current, player.CurrentTrack)
			}
		})
	}
}

func TestMusicRequestIsIdempotent(t *testing.T) {
	w, player, tracks, sched := newMusicWorld(t)
	system.RequestMusic(w, "ambient", 0.6, 4)
	runTicks(w, sched, 10)
	system.RequestMusic(w, "ambient", 0.6, 4)
	runTicks(w, sched, 10)

	if tracks["ambient"].rewinds != 1 {
		t.Fatalf("repeating a request should not restart the track")
	}
	if player.CurrentVolume != 0.6 {
		t.Fatalf("expected volume 0.6, got %v", player.CurrentVolume)
	}
}
