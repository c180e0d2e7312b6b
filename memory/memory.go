// Package memory holds the narrative data model shared by the layout,
// selection, camera and reveal packages. Nothing here keeps package-level
// state: every caller owns and passes its own State.
package memory

import (
	"errors"

	"github.com/milk9111/memorystars/common"
)

// ErrCountChanged is returned by Retext when the new content has a different
// number of regular items. Positions are fixed, so the layout cannot follow.
var ErrCountChanged = errors.New("memory: item count changed")

// Item is one narrative entry. Position is assigned once by the layout and
// never changes afterwards.
type Item struct {
	Title    string
	Body     string
	Position common.Vec3
	// Final marks the phantom item revealed after the regular items.
	Final bool
}

// Selection tracks which item the overlay shows and how far the camera has
// zoomed toward it.
type Selection struct {
	// Index is -1 when nothing is selected. It may point at an item while
	// Open is false, which keeps the camera focused without an overlay.
	Index int
	Open  bool
	// Zoom is in [0,1]; it approaches 1 while Open and 0 otherwise.
	Zoom float64
}

func NewSelection() Selection {
	return Selection{Index: -1}
}

// HasTarget reports whether the camera has an item to focus.
func (s Selection) HasTarget() bool {
	return s.Index >= 0
}

// Flags are one-way latches. Once set they are never cleared.
type Flags struct {
	PhantomRevealed    bool
	CenterUnlocked     bool
	LockConsumed       bool
	AttentionDismissed bool
}

// Stage is the progress of the bonus reveal sequence, independent of whether
// an overlay is currently open.
type Stage int

const (
	StageNarrative Stage = iota
	StagePhantom
	StageCenterPending
	StageCenterReady
	StageFinale
)

func (s Stage) String() string {
	switch s {
	case StageNarrative:
		return "narrative"
	case StagePhantom:
		return "phantom"
	case StageCenterPending:
		return "center_pending"
	case StageCenterReady:
		return "center_ready"
	case StageFinale:
		return "finale"
	default:
		return "unknown"
	}
}

// State is the single mutable session record read and written each tick.
type State struct {
	// Items is the selectable set. It starts with the regular items and
	// grows by one when the phantom is revealed.
	Items []Item
	// Regular is the number of regular (non-phantom) items.
	Regular   int
	Selection Selection
	Flags     Flags
	Stage     Stage
}

// NewState copies items into a fresh session.
func NewState(items []Item) *State {
	copied := append([]Item(nil), items...)
	return &State{
		Items:     copied,
		Regular:   len(copied),
		Selection: NewSelection(),
	}
}

// Item returns the item at i, if in range.
func (s *State) Item(i int) (Item, bool) {
	if s == nil || i < 0 || i >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[i], true
}

// Selected returns the item the selection points at.
func (s *State) Selected() (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	return s.Item(s.Selection.Index)
}

// LastIndex returns the index of the last selectable item, or -1.
func (s *State) LastIndex() int {
	if s == nil {
		return -1
	}
	return len(s.Items) - 1
}

// HasNext reports whether a "next" action would advance the selection.
func (s *State) HasNext() bool {
	if s == nil || !s.Selection.Open {
		return false
	}
	return s.Selection.Index >= 0 && s.Selection.Index < s.LastIndex()
}

// Retext replaces titles and bodies in place, keeping positions. items must
// have one entry per regular item. The phantom text is replaced when it has
// already been revealed.
func (s *State) Retext(items []Item, phantom Item) error {
	if len(items) != s.Regular {
		return ErrCountChanged
	}
	for i, it := range items {
		s.Items[i].Title = it.Title
		s.Items[i].Body = it.Body
	}
	if len(s.Items) > s.Regular {
		s.Items[s.Regular].Title = phantom.Title
		s.Items[s.Regular].Body = phantom.Body
	}
	return nil
}
