package component

import "image/color"

// Star is one selectable memory star. Index matches memory.State.Items.
// Scale, Glow and Opacity are written by the visual system each tick.
type Star struct {
	Index        int
	Radius       float64
	Color        color.RGBA
	FlickerSpeed float64
	FlickerPhase float64

	// Hidden stars are neither drawn nor selectable.
	Hidden   bool
	Hovered  bool
	Selected bool

	Scale   float64
	Glow    float64
	Opacity float64
}

var StarComponent = NewComponent[Star]()
