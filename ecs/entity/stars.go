package entity

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/spiral"
)

var (
	defaultStarColor   = color.RGBA{0xff, 0xc6, 0xff, 0xff}
	defaultCenterColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

const starSeed = 3

// NewStars creates one star per laid-out item plus a hidden star at the
// phantom point, which takes the next index.
func NewStars(w *ecs.World, scene *prefabs.SceneSpec, layout spiral.Layout) ([]ecs.Entity, error) {
	palette := make([]color.RGBA, 0, len(scene.Stars.Colors))
	for _, name := range scene.Stars.Colors {
		c, err := prefabs.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("stars: %w", err)
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		palette = append(palette, defaultStarColor)
	}

	radius := scene.Stars.Radius
	if radius <= 0 {
		radius = 0.35
	}
	lo, hi := scene.Stars.FlickerMin, scene.Stars.FlickerMax
	if hi < lo {
		lo, hi = hi, lo
	}
	rng := rand.New(rand.NewSource(starSeed))

	n := len(layout.Items)
	out := make([]ecs.Entity, 0, n+1)
	for i := 0; i <= n; i++ {
		pos := layout.Phantom
		if i < n {
			pos = layout.Items[i].Position
		}

		star := ecs.CreateEntity(w)
		if err := ecs.Add(w, star, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
			return nil, fmt.Errorf("stars: add transform: %w", err)
		}
		if err := ecs.Add(w, star, component.StarComponent.Kind(), &component.Star{
			Index:        i,
			Radius:       radius,
			Color:        palette[i%len(palette)],
			FlickerSpeed: lo + rng.Float64()*(hi-lo),
			FlickerPhase: rng.Float64() * 2 * math.Pi,
			Hidden:       i == n,
			Scale:        1,
		}); err != nil {
			return nil, fmt.Errorf("stars: add star: %w", err)
		}
		out = append(out, star)
	}
	return out, nil
}

// NewCenter creates the hidden star at the spiral's origin.
func NewCenter(w *ecs.World, scene *prefabs.SceneSpec) (ecs.Entity, error) {
	radius := scene.Stars.Radius * 1.6
	if radius <= 0 {
		radius = 0.56
	}
	center := ecs.CreateEntity(w)
	if err := ecs.Add(w, center, component.TransformComponent.Kind(), &component.Transform{Scale: 1}); err != nil {
		return 0, fmt.Errorf("center: add transform: %w", err)
	}
	if err := ecs.Add(w, center, component.CenterComponent.Kind(), &component.Center{
		Radius: radius,
		Color:  prefabs.ColorOr(scene.Stars.Center, defaultCenterColor),
	}); err != nil {
		return 0, fmt.Errorf("center: add center: %w", err)
	}
	return center, nil
}

// NewPulse creates the attention ring and the heart aura.
func NewPulse(w *ecs.World, scene *prefabs.SceneSpec) error {
	ring := ecs.CreateEntity(w)
	if err := ecs.Add(w, ring, component.TransformComponent.Kind(), &component.Transform{Scale: 1}); err != nil {
		return fmt.Errorf("pulse: add transform: %w", err)
	}
	if err := ecs.Add(w, ring, component.AttentionPulseComponent.Kind(), &component.AttentionPulse{Target: scene.PulseTarget}); err != nil {
		return fmt.Errorf("pulse: add attention pulse: %w", err)
	}

	aura := ecs.CreateEntity(w)
	if err := ecs.Add(w, aura, component.TransformComponent.Kind(), &component.Transform{Scale: 1}); err != nil {
		return fmt.Errorf("pulse: add aura transform: %w", err)
	}
	if err := ecs.Add(w, aura, component.AuraComponent.Kind(), &component.Aura{}); err != nil {
		return fmt.Errorf("pulse: add aura: %w", err)
	}
	return nil
}
