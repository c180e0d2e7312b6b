package component

import "image/color"

// Center is the star at the origin revealed after the phantom is read.
type Center struct {
	Radius  float64
	Color   color.RGBA
	Visible bool
	// Locked keeps the padlock drawn until the first click consumes it.
	Locked  bool
	Hovered bool
	Glow    float64
}

var CenterComponent = NewComponent[Center]()
