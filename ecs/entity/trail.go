package entity

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/spiral"
)

var defaultTrailColor = color.RGBA{0xff, 0xb6, 0xff, 0xff}

// NewTrail samples the curve through the stars and the phantom point.
func NewTrail(w *ecs.World, scene *prefabs.SceneSpec, curve spiral.Curve) (ecs.Entity, error) {
	div := scene.Trail.Divisions
	if div <= 0 {
		div = spiral.DefaultDivisions
	}
	speed := scene.Trail.Speed
	if speed <= 0 {
		speed = 0.2
	}

	trail := ecs.CreateEntity(w)
	if err := ecs.Add(w, trail, component.TrailComponent.Kind(), &component.Trail{
		Points:      curve.Sample(div),
		Lengths:     curve.Lengths(div),
		Speed:       speed,
		BaseOpacity: scene.Trail.BaseOpacity,
		OpacityGain: scene.Trail.OpacityGain,
		Opacity:     scene.Trail.BaseOpacity,
		Color:       prefabs.ColorOr(scene.Trail.Color, defaultTrailColor),
	}); err != nil {
		return 0, fmt.Errorf("trail: add trail: %w", err)
	}
	return trail, nil
}

// NewStardust scatters particles along the curve. Each one activates when
// the drawn trail reaches its arc length.
func NewStardust(w *ecs.World, scene *prefabs.SceneSpec, curve spiral.Curve) (ecs.Entity, error) {
	spec := scene.Stardust
	div := scene.Trail.Divisions
	if div <= 0 {
		div = spiral.DefaultDivisions
	}
	lengths := curve.Lengths(div)
	total := lengths[len(lengths)-1]
	rng := rand.New(rand.NewSource(spec.Seed))

	particles := make([]component.DustParticle, spec.Count)
	for i := range particles {
		u := rng.Float64()
		particles[i] = component.DustParticle{
			Position:   curve.PointAt(u, lengths),
			Activation: u * total,
			Velocity: common.Vec3{
				X: (rng.Float64() - 0.5) * spec.Jitter,
				Y: (rng.Float64() - 0.5) * spec.Jitter,
				Z: (rng.Float64() - 0.5) * spec.Jitter,
			},
		}
	}

	dust := ecs.CreateEntity(w)
	if err := ecs.Add(w, dust, component.StardustComponent.Kind(), &component.Stardust{
		Particles: particles,
		BurstMin:  spec.BurstMin,
		BurstMax:  spec.BurstMax,
		Damping:   spec.Damping,
		Color:     prefabs.ColorOr(spec.Color, defaultTrailColor),
	}); err != nil {
		return 0, fmt.Errorf("stardust: add stardust: %w", err)
	}
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(spec.Damping))
	return dust, nil
}

// NewBackdrop fills a cube with distant stars.
func NewBackdrop(w *ecs.World, scene *prefabs.SceneSpec) (ecs.Entity, error) {
	spec := scene.Backdrop
	rng := rand.New(rand.NewSource(spec.Seed))
	points := make([]common.Vec3, spec.Count)
	for i := range points {
		points[i] = common.Vec3{
			X: (rng.Float64() - 0.5) * spec.Extent,
			Y: (rng.Float64() - 0.5) * spec.Extent,
			Z: (rng.Float64() - 0.5) * spec.Extent,
		}
	}

	backdrop := ecs.CreateEntity(w)
	if err := ecs.Add(w, backdrop, component.BackdropComponent.Kind(), &component.Backdrop{
		Points: points,
		Spin:   spec.Spin,
	}); err != nil {
		return 0, fmt.Errorf("backdrop: add backdrop: %w", err)
	}
	return backdrop, nil
}
