package entity

import (
	"fmt"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/spiral"
)

// Scene is what NewScene built.
type Scene struct {
	Session ecs.Entity
	Camera  ecs.Entity
	Layout  spiral.Layout
	Curve   spiral.Curve
}

// NewScene lays out the narrative and creates every scene entity.
func NewScene(w *ecs.World, scene *prefabs.SceneSpec, mem *prefabs.MemoriesSpec, opts Options) (*Scene, error) {
	layout, err := spiral.Build(scene.SpiralParams(), mem.MemoryItems())
	if err != nil {
		return nil, fmt.Errorf("scene: layout: %w", err)
	}
	curve := spiral.NewCurve(layout)

	sess, err := NewSession(w, scene, mem, layout, opts)
	if err != nil {
		return nil, err
	}
	cam, err := NewCamera(w, scene)
	if err != nil {
		return nil, err
	}
	if _, err := NewBackdrop(w, scene); err != nil {
		return nil, err
	}
	if _, err := NewTrail(w, scene, curve); err != nil {
		return nil, err
	}
	if _, err := NewStardust(w, scene, curve); err != nil {
		return nil, err
	}
	if _, err := NewStars(w, scene, layout); err != nil {
		return nil, err
	}
	if _, err := NewCenter(w, scene); err != nil {
		return nil, err
	}
	if err := NewPulse(w, scene); err != nil {
		return nil, err
	}
	if _, err := NewMusicPlayer(w); err != nil {
		return nil, err
	}

	return &Scene{Session: sess, Camera: cam, Layout: layout, Curve: curve}, nil
}
