// Package focus eases the camera toward the selected item or back to rest.
package focus

import (
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/memory"
)

type Config struct {
	// Rest is where the camera sits with nothing selected.
	Rest     common.Vec3
	RestLook common.Vec3
	// Frame shifts the aim point off the item so it sits beside the overlay.
	Frame common.Vec3
	// Standoff is the camera offset from the aim point.
	Standoff common.Vec3
	// Damping is the per-tick fraction of the remaining distance covered.
	Damping float64
	// PanLimit scales the pointer parallax at rest.
	PanLimit float64
	ZoomIn   float64
	ZoomOut  float64
}

func DefaultConfig() Config {
	return Config{
		Rest:     common.Vec3{Z: 30},
		RestLook: common.Vec3{},
		Frame:    common.Vec3{X: 1.5},
		Standoff: common.Vec3{Z: 5},
		Damping:  0.05,
		PanLimit: 4,
		ZoomIn:   0.02,
		ZoomOut:  0.01,
	}
}

// Controller owns the camera pose between ticks.
type Controller struct {
	cfg      Config
	position common.Vec3
	look     common.Vec3
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, position: cfg.Rest, look: cfg.RestLook}
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) Position() common.Vec3 {
	return c.position
}

func (c *Controller) Look() common.Vec3 {
	return c.look
}

// Camera returns the current pose as a perspective camera.
func (c *Controller) Camera() common.Camera {
	return common.NewCamera(c.position, c.look)
}

// Aim returns the point the camera looks at when focused on target.
func (c *Controller) Aim(target common.Vec3) common.Vec3 {
	return target.Add(c.cfg.Frame)
}

// Goal returns the camera position when focused on target.
func (c *Controller) Goal(target common.Vec3) common.Vec3 {
	return c.Aim(target).Add(c.cfg.Standoff)
}

// Tick advances zoom and then the camera pose by one frame. target is the
// focused item position, or nil. pointer is the parallax input in [-1,1]
// with y down.
func (c *Controller) Tick(sel *memory.Selection, target *common.Vec3, pointer common.Vec2) {
	if sel != nil {
		sel.Zoom = StepZoom(sel.Zoom, sel.Open, c.cfg)
	}

	k := c.cfg.Damping
	if target != nil {
		aim := c.Aim(*target)
		c.position = c.position.Lerp(aim.Add(c.cfg.Standoff), k)
		c.look = aim
		return
	}

	zoom := 0.0
	if sel != nil {
		zoom = sel.Zoom
	}
	c.look = c.look.Lerp(c.cfg.RestLook, k)
	if zoom > 0 {
		c.position = c.position.Lerp(c.cfg.Rest, k)
		return
	}

	goal := Parallax(c.cfg, pointer)
	c.position = c.position.Lerp(goal, k)
}

// Parallax returns the resting camera position nudged by the pointer.
func Parallax(cfg Config, pointer common.Vec2) common.Vec3 {
	px := common.Clamp(pointer.X, -1, 1)
	py := common.Clamp(pointer.Y, -1, 1)
	return common.Vec3{
		X: cfg.Rest.X + px*cfg.PanLimit,
		Y: cfg.Rest.Y - py*cfg.PanLimit,
		Z: cfg.Rest.Z,
	}
}

// StepZoom moves zoom one tick toward 1 when open and toward 0 otherwise.
func StepZoom(zoom float64, open bool, cfg Config) float64 {
	if open {
		return common.Clamp(zoom+cfg.ZoomIn, 0, 1)
	}
	return common.Clamp(zoom-cfg.ZoomOut, 0, 1)
}

// TargetFor returns the camera target for the current selection.
func TargetFor(st *memory.State) *common.Vec3 {
	item, ok := st.Selected()
	if !ok {
		return nil
	}
	p := item.Position
	return &p
}
