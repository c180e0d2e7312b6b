package component

import (
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/proximity"
	"github.com/milk9111/memorystars/reveal"
)

// Session is the singleton holding the narrative state and its sequencer.
type Session struct {
	State     *memory.State
	Sequencer *reveal.Sequencer
	Proximity proximity.Config
	Mobile    bool
	Started   bool
	// FadeFrames is the fade-in length of newly revealed stars.
	FadeFrames int
}

var SessionComponent = NewComponent[Session]()

// Clock counts ticks since the scene started.
type Clock struct {
	Ticks int
	Ms    float64
}

var ClockComponent = NewComponent[Clock]()

// Hover is the tooltip state for the star under the pointer.
type Hover struct {
	Index   int
	Title   string
	Visible bool
}

var HoverComponent = NewComponent[Hover]()
