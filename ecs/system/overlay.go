package system

import (
	"github.com/milk9111/memorystars/ecs"
)

// Sink presents overlay events. The game's UI implements it.
type Sink interface {
	ShowItem(ev ItemEvent)
	HideItem()
	ShowMessage(text string)
	Copy(text string)
}

// OverlaySystem drains the world's event queue into the UI. It runs last so
// everything queued during the tick is shown on the same frame.
type OverlaySystem struct {
	sink Sink
}

func NewOverlaySystem(sink Sink) *OverlaySystem {
	return &OverlaySystem{sink: sink}
}

func (s *OverlaySystem) Update(w *ecs.World) {
	events := w.Events().Drain()
	if s.sink == nil {
		return
	}
	for _, evt := range events {
		switch evt.Type {
		case EventShowItem:
			if ev, ok := evt.Data.(ItemEvent); ok {
				s.sink.ShowItem(ev)
			}
		case EventHideItem:
			s.sink.HideItem()
		case EventMessage:
			if text, ok := evt.Data.(string); ok {
				s.sink.ShowMessage(text)
			}
		case EventCopy:
			if text, ok := evt.Data.(string); ok {
				s.sink.Copy(text)
			}
		}
	}
}
