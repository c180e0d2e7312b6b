package system

import (
	"math"

	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/tween"
)

// VisualSystem animates stars, fades, the attention ring, the heart aura and
// the backdrop from the scene clock.
type VisualSystem struct {
	heartbeat  *tween.Curve
	hoverScale float64

	// The beat restarts whenever a different item opens.
	beatIndex   int
	beatStartMs float64
}

// NewVisualSystem uses heartbeat for the selected star's glow level; a nil
// curve falls back to the built-in lub-dub shape.
func NewVisualSystem(heartbeat *tween.Curve, hoverScale float64) *VisualSystem {
	if heartbeat == nil {
		heartbeat = &tween.Curve{Fallback: tween.HeartbeatLevel}
	}
	if hoverScale <= 0 {
		hoverScale = 1.25
	}
	return &VisualSystem{heartbeat: heartbeat, hoverScale: hoverScale, beatIndex: -1}
}

// SetHeartbeat swaps the heartbeat curve, e.g. after a script reload.
func (s *VisualSystem) SetHeartbeat(curve *tween.Curve) {
	if curve != nil {
		s.heartbeat = curve
	}
}

func (s *VisualSystem) Update(w *ecs.World) {
	ent, sess, ok := session(w)
	if !ok {
		return
	}
	var ms float64
	if clock, ok := ecs.Get(w, ent, component.ClockComponent.Kind()); ok {
		ms = clock.Ms
	}
	st := sess.State

	ecs.ForEach(w, component.FadeComponent.Kind(), func(_ ecs.Entity, fade *component.Fade) {
		if !fade.Tween.Done(fade.Elapsed) {
			fade.Elapsed++
		}
		fade.Value = fade.Tween.At(fade.Elapsed)
	})

	focused := -1
	if st.Selection.Open {
		focused = st.Selection.Index
	}
	if focused != s.beatIndex {
		s.beatIndex = focused
		s.beatStartMs = ms
	}
	beatMs := ms - s.beatStartMs
	var focusPos *common.Vec3

	ecs.ForEach2(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, star *component.Star, tr *component.Transform) {
		star.Selected = star.Index == focused
		if star.Hidden {
			star.Opacity = 0
			return
		}

		star.Scale = tween.Breathing(ms)
		if star.Hovered {
			star.Scale = s.hoverScale
		}
		star.Glow = tween.Flicker(ms, star.FlickerSpeed, star.FlickerPhase)
		if star.Selected {
			star.Glow = tween.Heartbeat(beatMs, s.heartbeat.Eval)
			p := tr.Position
			focusPos = &p
		}
		tr.Scale = star.Scale

		star.Opacity = 1
		if fade, ok := ecs.Get(w, e, component.FadeComponent.Kind()); ok {
			star.Opacity = fade.Value
		}
	})

	ecs.ForEach(w, component.AuraComponent.Kind(), func(e ecs.Entity, aura *component.Aura) {
		aura.Visible = focusPos != nil
		if !aura.Visible {
			return
		}
		aura.Scale, aura.Opacity = tween.AuraPulse(beatMs)
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			tr.Position = *focusPos
		}
	})

	ecs.ForEach(w, component.AttentionPulseComponent.Kind(), func(e ecs.Entity, pulse *component.AttentionPulse) {
		pulse.Hidden = st.Flags.AttentionDismissed || !sess.Started
		sec := ms / 1000
		pulse.Scale = 1 + math.Sin(sec*2)*0.08
		pulse.Opacity = 0.5 + math.Sin(sec*2)*0.2
		if item, ok := st.Item(pulse.Target); ok {
			if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				tr.Position = item.Position
			}
		}
	})

	ecs.ForEach(w, component.CenterComponent.Kind(), func(e ecs.Entity, center *component.Center) {
		if !center.Visible {
			return
		}
		center.Glow = tween.Flicker(ms, 0.002, 0)
		if center.Hovered {
			center.Glow += 0.5
		}
	})

	ecs.ForEach(w, component.BackdropComponent.Kind(), func(_ ecs.Entity, b *component.Backdrop) {
		b.Rotation = math.Mod(b.Rotation+b.Spin, 2*math.Pi)
	})
}
