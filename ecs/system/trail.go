package system

import (
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

// TrailSystem grows the drawn part of the trail once the scene has started.
type TrailSystem struct{}

func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

func (s *TrailSystem) Update(w *ecs.World) {
	_, sess, ok := session(w)
	if !ok || !sess.Started {
		return
	}

	ecs.ForEach(w, component.TrailComponent.Kind(), func(_ ecs.Entity, trail *component.Trail) {
		total := float64(len(trail.Points))
		trail.Drawn += trail.Speed
		if trail.Drawn > total {
			trail.Drawn = total
		}
		trail.Opacity = trail.BaseOpacity + trail.Progress()*trail.OpacityGain
	})
}
