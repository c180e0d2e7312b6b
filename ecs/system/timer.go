package system

import (
	"sort"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
)

// Timers schedules one-shot callbacks as timer entities. It satisfies the
// reveal sequencer's scheduler.
type Timers struct {
	w   *ecs.World
	seq uint64
}

func NewTimers(w *ecs.World) *Timers {
	return &Timers{w: w}
}

// After runs fn once frames timer ticks from now. Non-positive frames fire on
// the next tick.
func (t *Timers) After(frames int, fn func()) {
	if t == nil || t.w == nil || fn == nil {
		return
	}
	if frames < 1 {
		frames = 1
	}
	t.seq++
	ent := ecs.CreateEntity(t.w)
	_ = ecs.Add(t.w, ent, component.TimerComponent.Kind(), &component.Timer{Frames: frames, Seq: t.seq, Fire: fn})
}

// TimerSystem counts timers down and fires the expired ones in scheduling
// order.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var expired []component.Timer
	ecs.ForEach(w, component.TimerComponent.Kind(), func(e ecs.Entity, timer *component.Timer) {
		timer.Frames--
		if timer.Frames > 0 {
			return
		}
		expired = append(expired, *timer)
		ecs.DestroyEntity(w, e)
	})

	sort.Slice(expired, func(i, j int) bool { return expired[i].Seq < expired[j].Seq })
	for _, timer := range expired {
		if timer.Fire != nil {
			timer.Fire()
		}
	}
}
