package system

import (
	"github.com/milk9111/memorystars/ecs"
)

// StartSystem starts the scene on the first start gesture and fades the
// music in.
type StartSystem struct {
	track      string
	volume     float64
	fadeFrames int
}

func NewStartSystem(track string, volume float64, fadeFrames int) *StartSystem {
	return &StartSystem{track: track, volume: volume, fadeFrames: fadeFrames}
}

func (s *StartSystem) Update(w *ecs.World) {
	ent, sess, ok := session(w)
	if !ok || sess.Started {
		return
	}
	if !input(w, ent).Start {
		return
	}
	sess.Started = true
	if s.track != "" {
		RequestMusic(w, s.track, s.volume, s.fadeFrames)
	}
}
