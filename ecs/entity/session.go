package entity

import (
	"fmt"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/ecs/system"
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/reveal"
	"github.com/milk9111/memorystars/spiral"
	"github.com/milk9111/memorystars/tween"
)

// Options are the runtime switches that shape a scene.
type Options struct {
	Mobile bool
	Debug  bool
}

// NewSession creates the singleton carrying the narrative state, its
// sequencer, input, clock and tooltip.
func NewSession(w *ecs.World, scene *prefabs.SceneSpec, mem *prefabs.MemoriesSpec, layout spiral.Layout, opts Options) (ecs.Entity, error) {
	ease, ok := tween.Named(scene.Reveal.FadeEase)
	if !ok {
		return 0, fmt.Errorf("session: unknown fade ease %q", scene.Reveal.FadeEase)
	}
	host := system.NewRevealHost(w, scene.Reveal.FadeFrames, ease, opts.Debug)
	seq := reveal.New(scene.RevealConfig(mem), layout.Phantom, host, system.NewTimers(w))

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.SessionComponent.Kind(), &component.Session{
		State:      memory.NewState(layout.Items),
		Sequencer:  seq,
		Proximity:  scene.ProximityConfig(),
		Mobile:     opts.Mobile,
		FadeFrames: scene.Reveal.FadeFrames,
	}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	if err := ecs.Add(w, ent, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("session: add input: %w", err)
	}
	if err := ecs.Add(w, ent, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("session: add clock: %w", err)
	}
	if err := ecs.Add(w, ent, component.HoverComponent.Kind(), &component.Hover{Index: -1}); err != nil {
		return 0, fmt.Errorf("session: add hover: %w", err)
	}
	return ent, nil
}
