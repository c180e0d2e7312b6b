package system

import (
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

// TickMs is the duration of one update at 60 TPS.
const TickMs = 1000.0 / 60.0

type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, c *component.Clock) {
		c.Ticks++
		c.Ms = float64(c.Ticks) * TickMs
	})
}
