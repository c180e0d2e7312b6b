package system

import (
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/proximity"
)

// HoverSystem highlights the single star nearest the pointer ray and keeps
// the tooltip in sync. Hover is suppressed while an item is open.
type HoverSystem struct{}

func NewHoverSystem() *HoverSystem {
	return &HoverSystem{}
}

func (s *HoverSystem) Update(w *ecs.World) {
	ent, sess, ok := session(w)
	if !ok {
		return
	}
	cam, ok := view(w)
	if !ok {
		return
	}

	idx, hit := -1, false
	centerHover := false
	if sess.Started && !sess.State.Selection.Open {
		in := input(w, ent)
		ray := cam.View.RayFromNDC(proximity.PointerNDC(sess.Mobile, in.Pointer))
		resolver := sess.Proximity.Resolver(proximity.Hover)
		idx, hit = resolver.Resolve(ray, targets(w, sess))
		if target, _, visible := centerTarget(w, sess); visible && sess.Sequencer.CenterActive(sess.State) {
			_, centerHover = resolver.Resolve(ray, []proximity.Target{target})
		}
	}

	ecs.ForEach(w, component.StarComponent.Kind(), func(_ ecs.Entity, star *component.Star) {
		star.Hovered = hit && star.Index == idx
	})
	ecs.ForEach(w, component.CenterComponent.Kind(), func(_ ecs.Entity, center *component.Center) {
		center.Hovered = centerHover
	})

	hover, ok := ecs.Get(w, ent, component.HoverComponent.Kind())
	if !ok {
		return
	}
	hover.Index = -1
	hover.Title = ""
	hover.Visible = false
	if item, ok := sess.State.Item(idx); hit && ok {
		hover.Index = idx
		hover.Title = item.Title
		hover.Visible = true
	}
}
