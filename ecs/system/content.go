package system

import (
	"fmt"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/memory"
)

// ApplyContent swaps the narrative text without touching the layout. The
// open overlay, if any, is refreshed.
func ApplyContent(w *ecs.World, items []memory.Item, phantom memory.Item, messages []string) error {
	_, sess, ok := session(w)
	if !ok {
		return fmt.Errorf("content: no session")
	}
	st := sess.State
	if err := st.Retext(items, phantom); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	sess.Sequencer.SetContent(phantom, messages)

	if st.Selection.Open {
		if item, ok := st.Selected(); ok {
			w.Events().Push(ecs.Event{Type: EventShowItem, Data: itemEvent(st.Selection.Index, item, st.HasNext())})
		}
	}
	return nil
}
