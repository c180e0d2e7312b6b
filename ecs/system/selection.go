package system

import (
	"strings"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/proximity"
)

// SelectionSystem turns clicks and keys into sequencer actions.
type SelectionSystem struct{}

func NewSelectionSystem() *SelectionSystem {
	return &SelectionSystem{}
}

func (s *SelectionSystem) Update(w *ecs.World) {
	ent, sess, ok := session(w)
	if !ok || !sess.Started {
		return
	}
	in := input(w, ent)
	st := sess.State
	seq := sess.Sequencer

	switch {
	case in.Close:
		seq.Close(st)
	case in.Next:
		seq.Next(st)
	}

	if in.Copy && st.Selection.Open {
		if item, ok := st.Selected(); ok {
			w.Events().Push(ecs.Event{Type: EventCopy, Data: CopyText(item)})
		}
	}

	if !in.Click || in.UIBlocked || st.Selection.Open {
		return
	}
	cam, ok := view(w)
	if !ok {
		return
	}
	ray := cam.View.RayFromNDC(proximity.PointerNDC(sess.Mobile, in.Pointer))
	resolver := sess.Proximity.Resolver(proximity.Click)

	if seq.CenterActive(st) {
		if target, _, visible := centerTarget(w, sess); visible {
			if _, hit := resolver.Resolve(ray, []proximity.Target{target}); hit {
				seq.ActivateCenter(st)
				return
			}
		}
	}

	if idx, hit := resolver.Resolve(ray, targets(w, sess)); hit {
		seq.Open(st, idx)
	}
}

// CopyText is the clipboard form of an item: title, blank line, body text.
func CopyText(item memory.Item) string {
	var b strings.Builder
	b.WriteString(item.Title)
	if body := memory.PlainText(item.Body); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	return b.String()
}
