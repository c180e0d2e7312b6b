package system

import (
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

// Poller fills in one tick of input from the platform.
type Poller interface {
	Poll(in *component.Input)
}

type PollerFunc func(in *component.Input)

func (f PollerFunc) Poll(in *component.Input) {
	f(in)
}

type InputSystem struct {
	poller Poller
}

func NewInputSystem(poller Poller) *InputSystem {
	return &InputSystem{poller: poller}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.poller == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		// Edge-triggered fields only live for one tick; the pointer persists
		// so touch devices keep their last position.
		pointer := in.Pointer
		*in = component.Input{Pointer: pointer}
		i.poller.Poll(in)

		// The first touch switches the session to the screen-center ray.
		if !in.Touch {
			return
		}
		if sess, ok := ecs.Get(w, e, component.SessionComponent.Kind()); ok && !sess.Mobile {
			sess.Mobile = true
		}
	})
}
