package entity

import (
	"fmt"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

func NewMusicPlayer(w *ecs.World) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
		Tracks: make(map[string]component.Track),
	}); err != nil {
		return 0, fmt.Errorf("music player: add component: %w", err)
	}
	return ent, nil
}
