// Package reveal sequences the narrative: opening, advancing and closing
// items, then the one-shot phantom and center-star reveals that follow the
// last regular item.
package reveal

import (
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/memory"
)

// Phase is the externally visible sequencer state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseItemOpen
	PhasePhantomPending
	PhaseCenterPending
	PhaseCenterReady
	PhaseFinale
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseItemOpen:
		return "item_open"
	case PhasePhantomPending:
		return "phantom_pending"
	case PhaseCenterPending:
		return "center_pending"
	case PhaseCenterReady:
		return "center_ready"
	case PhaseFinale:
		return "finale"
	default:
		return "unknown"
	}
}

// Host receives the visible effects of each transition.
type Host interface {
	ShowItem(index int, item memory.Item, hasNext bool)
	HideItem()
	RevealPhantom(index int, item memory.Item)
	RevealCenter()
	ConsumeLock()
	ShowMessage(text string)
}

// Scheduler runs fn once after the given number of ticks. Scheduled calls
// cannot be cancelled.
type Scheduler interface {
	After(frames int, fn func())
}

// Config holds the content and timing of the bonus reveals.
type Config struct {
	// Phantom is the title and body of the hidden final item.
	Phantom memory.Item
	// CenterDelay is the ticks between closing the phantom and the center
	// star appearing.
	CenterDelay int
	// MessageDelay is the ticks between the center click and the first
	// message; MessageGap separates the following ones.
	MessageDelay int
	MessageGap   int
	Messages     []string
}

func DefaultConfig() Config {
	return Config{
		CenterDelay:  120,
		MessageDelay: 90,
		MessageGap:   240,
	}
}

// Sequencer applies actions to a memory.State. It keeps no session state of
// its own; everything mutable lives in the State passed to each call.
type Sequencer struct {
	cfg     Config
	phantom common.Vec3
	host    Host
	sched   Scheduler
}

// New returns a sequencer. phantom is the position of the hidden item.
func New(cfg Config, phantom common.Vec3, host Host, sched Scheduler) *Sequencer {
	return &Sequencer{cfg: cfg, phantom: phantom, host: host, sched: sched}
}

// Phase derives the current phase from the state.
func (s *Sequencer) Phase(st *memory.State) Phase {
	if st == nil {
		return PhaseIdle
	}
	if st.Selection.Open {
		return PhaseItemOpen
	}
	switch st.Stage {
	case memory.StagePhantom:
		return PhasePhantomPending
	case memory.StageCenterPending:
		return PhaseCenterPending
	case memory.StageCenterReady:
		return PhaseCenterReady
	case memory.StageFinale:
		return PhaseFinale
	default:
		return PhaseIdle
	}
}

// Open shows item i. Out-of-range indices are clamped. Opening is refused
// while another item is shown.
func (s *Sequencer) Open(st *memory.State, i int) bool {
	if st == nil || len(st.Items) == 0 || st.Selection.Open {
		return false
	}
	s.show(st, clampIndex(i, len(st.Items)))
	return true
}

// Next advances the open item by exactly one. It is a no-op at the last
// index or while nothing is open.
func (s *Sequencer) Next(st *memory.State) bool {
	if !st.HasNext() {
		return false
	}
	s.show(st, st.Selection.Index+1)
	return true
}

// Close hides the open item and fires any reveal it unlocks. Closing while
// nothing is open is a no-op.
func (s *Sequencer) Close(st *memory.State) bool {
	if st == nil || !st.Selection.Open {
		return false
	}

	closed := st.Selection.Index
	item, _ := st.Item(closed)
	st.Selection.Open = false
	st.Selection.Index = -1
	s.emit(func(h Host) { h.HideItem() })

	switch {
	case closed == st.Regular-1 && !st.Flags.PhantomRevealed:
		s.revealPhantom(st)
	case item.Final && !st.Flags.CenterUnlocked:
		s.unlockCenter(st)
	}
	return true
}

// ActivateCenter consumes the center lock and schedules the closing
// messages. It only acts once the center star is visible.
func (s *Sequencer) ActivateCenter(st *memory.State) bool {
	if st == nil || st.Selection.Open || st.Stage != memory.StageCenterReady || st.Flags.LockConsumed {
		return false
	}

	st.Flags.LockConsumed = true
	st.Stage = memory.StageFinale
	s.emit(func(h Host) { h.ConsumeLock() })

	delay := s.cfg.MessageDelay
	for _, msg := range s.cfg.Messages {
		text := msg
		s.after(delay, func() {
			s.emit(func(h Host) { h.ShowMessage(text) })
		})
		delay += s.cfg.MessageGap
	}
	return true
}

// CenterActive reports whether the center star accepts clicks.
func (s *Sequencer) CenterActive(st *memory.State) bool {
	return st != nil && st.Stage == memory.StageCenterReady && !st.Flags.LockConsumed
}

func (s *Sequencer) show(st *memory.State, i int) {
	st.Selection.Index = i
	st.Selection.Open = true
	st.Flags.AttentionDismissed = true
	item := st.Items[i]
	hasNext := st.HasNext()
	s.emit(func(h Host) { h.ShowItem(i, item, hasNext) })
}

func (s *Sequencer) revealPhantom(st *memory.State) {
	st.Flags.PhantomRevealed = true
	st.Stage = memory.StagePhantom

	phantom := s.cfg.Phantom
	phantom.Position = s.phantom
	phantom.Final = true
	st.Items = append(st.Items, phantom)
	index := len(st.Items) - 1

	// Focus without opening: the camera flies to the phantom and the user
	// opens it with a click.
	st.Selection.Index = index
	s.emit(func(h Host) { h.RevealPhantom(index, phantom) })
}

func (s *Sequencer) unlockCenter(st *memory.State) {
	st.Flags.CenterUnlocked = true
	st.Stage = memory.StageCenterPending
	s.after(s.cfg.CenterDelay, func() {
		if st.Stage == memory.StageCenterPending {
			st.Stage = memory.StageCenterReady
		}
		s.emit(func(h Host) { h.RevealCenter() })
	})
}

func (s *Sequencer) emit(fn func(Host)) {
	if s.host != nil {
		fn(s.host)
	}
}

func (s *Sequencer) after(frames int, fn func()) {
	if s.sched == nil {
		fn()
		return
	}
	s.sched.After(frames, fn)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// SetContent replaces the phantom text and closing messages used by reveals
// that have not happened yet.
func (s *Sequencer) SetContent(phantom memory.Item, messages []string) {
	s.cfg.Phantom = phantom
	s.cfg.Messages = append([]string(nil), messages...)
}
