package component

import (
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/focus"
)

// Camera holds the focus controller and the view it produced this tick.
type Camera struct {
	Controller *focus.Controller
	View       common.Camera
}

var CameraComponent = NewComponent[Camera]()
