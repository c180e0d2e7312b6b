package ecs

import (
	"math"
	"testing"
)

func TestPhysicsWorldDamping(t *testing.T) {
	pw := NewPhysicsWorld(0.94)
	body := pw.AddBody(7, 1, 2, 1, 0)
	if again := pw.AddBody(7, 5, 5, 0, 0); again != body {
		t.Fatalf("expected existing body to be returned")
	}

	prev := body.Position().X
	speed := body.Velocity().X
	for i := 0; i < 30; i++ {
		pw.Step()
		v := body.Velocity().X
		if v >= speed {
			t.Fatalf("step %d: velocity should decay, was %v now %v", i, speed, v)
		}
		x := body.Position().X
		if x <= prev {
			t.Fatalf("step %d: body should keep drifting forward", i)
		}
		prev, speed = x, v
	}
	if want := math.Pow(0.94, 30); math.Abs(speed-want) > 1e-6 {
		t.Fatalf("expected velocity %v after 30 steps, got %v", want, speed)
	}
	if body.Position().Y != 2 {
		t.Fatalf("y should stay put without y velocity, got %v", body.Position().Y)
	}

	pw.RemoveBody(7)
	if _, ok := pw.Body(7); ok || pw.Len() != 0 {
		t.Fatalf("expected body removed")
	}
}
