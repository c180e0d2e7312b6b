package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

// PhysicsWorld owns the Chipmunk space that drifts stardust. Bodies carry
// only the x/y plane; callers integrate depth themselves.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[int]*cp.Body
}

// NewPhysicsWorld creates a gravity-free space. damping is the fraction of
// velocity kept per step.
func NewPhysicsWorld(damping float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 1
	space.SetGravity(cp.Vector{})
	space.SetDamping(damping)
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[int]*cp.Body),
	}
}

// AddBody registers a free body under key at x/y with the given velocity.
// An existing body under key is returned unchanged.
func (pw *PhysicsWorld) AddBody(key int, x, y, vx, vy float64) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	if body, ok := pw.bodies[key]; ok {
		return body
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocity(vx, vy)
	pw.space.AddBody(body)
	pw.bodies[key] = body
	return body
}

// Body returns the body registered under key.
func (pw *PhysicsWorld) Body(key int) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	body, ok := pw.bodies[key]
	return body, ok
}

func (pw *PhysicsWorld) RemoveBody(key int) {
	if pw == nil {
		return
	}
	body, ok := pw.bodies[key]
	if !ok {
		return
	}
	pw.space.RemoveBody(body)
	delete(pw.bodies, key)
}

func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// Step advances the space by one tick.
func (pw *PhysicsWorld) Step() {
	if pw == nil || pw.space == nil || len(pw.bodies) == 0 {
		return
	}
	pw.space.Step(1.0)
}
