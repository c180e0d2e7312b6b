package system

import (
	"log"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/tween"
)

const (
	EventShowItem = "show_item"
	EventHideItem = "hide_item"
	EventMessage  = "message"
	EventPhantom  = "phantom_revealed"
	EventCenter   = "center_revealed"
	EventUnlock   = "center_unlocked"
	EventCopy     = "copy"
)

// ItemEvent is the payload of EventShowItem.
type ItemEvent struct {
	Index   int
	Title   string
	Lines   []string
	HasNext bool
}

func itemEvent(index int, item memory.Item, hasNext bool) ItemEvent {
	return ItemEvent{
		Index:   index,
		Title:   item.Title,
		Lines:   memory.Lines(item.Body),
		HasNext: hasNext,
	}
}

// RevealHost applies sequencer effects to the world: it toggles the scene
// entities directly and queues events for the overlay.
type RevealHost struct {
	w          *ecs.World
	fadeFrames int
	fadeEase   tween.Ease
	debug      bool
}

func NewRevealHost(w *ecs.World, fadeFrames int, fadeEase tween.Ease, debug bool) *RevealHost {
	if fadeFrames < 1 {
		fadeFrames = 1
	}
	if fadeEase == nil {
		fadeEase = tween.OutCubic
	}
	return &RevealHost{w: w, fadeFrames: fadeFrames, fadeEase: fadeEase, debug: debug}
}

func (h *RevealHost) ShowItem(index int, item memory.Item, hasNext bool) {
	h.push(EventShowItem, itemEvent(index, item, hasNext))
}

func (h *RevealHost) HideItem() {
	h.push(EventHideItem, nil)
}

func (h *RevealHost) RevealPhantom(index int, item memory.Item) {
	ecs.ForEach(h.w, component.StarComponent.Kind(), func(e ecs.Entity, star *component.Star) {
		if star.Index != index || !star.Hidden {
			return
		}
		star.Hidden = false
		h.fadeIn(e)
	})
	if h.debug {
		log.Printf("reveal: phantom %q at index %d", item.Title, index)
	}
	h.push(EventPhantom, index)
}

func (h *RevealHost) RevealCenter() {
	ecs.ForEach(h.w, component.CenterComponent.Kind(), func(e ecs.Entity, center *component.Center) {
		if center.Visible {
			return
		}
		center.Visible = true
		center.Locked = true
		h.fadeIn(e)
	})
	if h.debug {
		log.Printf("reveal: center star visible")
	}
	h.push(EventCenter, nil)
}

func (h *RevealHost) ConsumeLock() {
	ecs.ForEach(h.w, component.CenterComponent.Kind(), func(_ ecs.Entity, center *component.Center) {
		center.Locked = false
	})
	h.push(EventUnlock, nil)
}

func (h *RevealHost) ShowMessage(text string) {
	h.push(EventMessage, text)
}

func (h *RevealHost) fadeIn(e ecs.Entity) {
	_ = ecs.Add(h.w, e, component.FadeComponent.Kind(), &component.Fade{
		Tween: tween.Tween{From: 0, To: 1, Duration: float64(h.fadeFrames), Ease: h.fadeEase},
	})
}

func (h *RevealHost) push(kind string, data any) {
	h.w.Events().Push(ecs.Event{Type: kind, Data: data})
}
