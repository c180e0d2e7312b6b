package system

import (
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/proximity"
)

func session(w *ecs.World) (ecs.Entity, *component.Session, bool) {
	ent, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	sess, ok := ecs.Get(w, ent, component.SessionComponent.Kind())
	if !ok || sess == nil || sess.State == nil {
		return 0, nil, false
	}
	return ent, sess, true
}

func input(w *ecs.World, ent ecs.Entity) component.Input {
	if in, ok := ecs.Get(w, ent, component.InputComponent.Kind()); ok && in != nil {
		return *in
	}
	return component.Input{}
}

func view(w *ecs.World) (*component.Camera, bool) {
	ent, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, ent, component.CameraComponent.Kind())
}

// targets returns one proximity target per selectable item. Items whose
// star is hidden or missing are disabled.
func targets(w *ecs.World, sess *component.Session) []proximity.Target {
	items := sess.State.Items
	out := make([]proximity.Target, len(items))
	for i, it := range items {
		out[i] = proximity.Target{Position: it.Position, Radius: sess.Proximity.HitRadius, Disabled: true}
	}
	ecs.ForEach(w, component.StarComponent.Kind(), func(_ ecs.Entity, star *component.Star) {
		if star.Index >= 0 && star.Index < len(out) && !star.Hidden {
			out[star.Index].Disabled = false
		}
	})
	return out
}

func centerTarget(w *ecs.World, sess *component.Session) (proximity.Target, *component.Center, bool) {
	ent, ok := ecs.First(w, component.CenterComponent.Kind())
	if !ok {
		return proximity.Target{}, nil, false
	}
	center, ok := ecs.Get(w, ent, component.CenterComponent.Kind())
	if !ok || !center.Visible {
		return proximity.Target{}, center, false
	}
	target := proximity.Target{Radius: center.Radius}
	if tr, ok := ecs.Get(w, ent, component.TransformComponent.Kind()); ok {
		target.Position = tr.Position
	}
	if target.Radius <= 0 {
		target.Radius = sess.Proximity.HitRadius
	}
	return target, center, true
}
