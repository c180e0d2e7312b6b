package system

import (
	"math/rand"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

// StardustSystem releases particles as the trail passes them. Released
// particles get a burst of speed, then drift to a stop. The physics world
// carries x/y; depth is integrated here.
type StardustSystem struct {
	rng *rand.Rand
}

func NewStardustSystem(seed int64) *StardustSystem {
	return &StardustSystem{rng: rand.New(rand.NewSource(seed))}
}

func (s *StardustSystem) Update(w *ecs.World) {
	_, sess, ok := session(w)
	if !ok || !sess.Started {
		return
	}
	trailEnt, ok := ecs.First(w, component.TrailComponent.Kind())
	if !ok {
		return
	}
	trail, _ := ecs.Get(w, trailEnt, component.TrailComponent.Kind())
	revealed := trail.RevealedLength()
	pw := w.PhysicsWorld()

	ecs.ForEach(w, component.StardustComponent.Kind(), func(_ ecs.Entity, dust *component.Stardust) {
		for i := range dust.Particles {
			p := &dust.Particles[i]
			if p.Active || p.Activation > revealed {
				continue
			}
			p.Active = true
			burst := dust.BurstMin + s.rng.Float64()*(dust.BurstMax-dust.BurstMin)
			p.Velocity = p.Velocity.Scale(burst)
			pw.AddBody(i, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y)
		}

		pw.Step()

		for i := range dust.Particles {
			p := &dust.Particles[i]
			if !p.Active {
				continue
			}
			if body, ok := pw.Body(i); ok {
				pos, vel := body.Position(), body.Velocity()
				p.Position.X, p.Position.Y = pos.X, pos.Y
				p.Velocity.X, p.Velocity.Y = vel.X, vel.Y
			} else {
				p.Position.X += p.Velocity.X
				p.Position.Y += p.Velocity.Y
				p.Velocity.X *= dust.Damping
				p.Velocity.Y *= dust.Damping
			}
			p.Position.Z += p.Velocity.Z
			p.Velocity.Z *= dust.Damping
		}
	})
}
