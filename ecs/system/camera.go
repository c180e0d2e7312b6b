package system

import (
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/focus"
)

// CameraSystem eases the camera toward the focused item, or back to rest
// with pointer parallax.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	ent, sess, ok := session(w)
	if !ok {
		return
	}
	cam, ok := view(w)
	if !ok || cam.Controller == nil {
		return
	}

	in := input(w, ent)
	// Parallax wants y down; touch has no hovering pointer to follow.
	var pointer common.Vec2
	if !sess.Mobile && !in.Touch {
		pointer = common.Vec2{X: in.Pointer.X, Y: -in.Pointer.Y}
	}

	st := sess.State
	cam.Controller.Tick(&st.Selection, focus.TargetFor(st), pointer)
	cam.View = cam.Controller.Camera()
}
