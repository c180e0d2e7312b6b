package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Camera is a perspective look-at camera. FOV is the vertical field of view
// in degrees.
type Camera struct {
	Position Vec3
	Look     Vec3
	FOV      float64
	Aspect   float64
	Near     float64
	Far      float64
}

// NewCamera returns the scene camera: 60 degree FOV at the base aspect ratio.
func NewCamera(position, look Vec3) Camera {
	return Camera{
		Position: position,
		Look:     look,
		FOV:      60,
		Aspect:   float64(BaseWidth) / float64(BaseHeight),
		Near:     0.1,
		Far:      1000,
	}
}

// Basis returns the right, up and forward unit vectors of the view.
func (c Camera) Basis() (right, up, forward Vec3) {
	forward = c.Look.Sub(c.Position).Normalize()
	if forward == (Vec3{}) {
		forward = Vec3{Z: -1}
	}
	worldUp := Vec3{Y: 1}
	right = forward.Cross(worldUp).Normalize()
	if right == (Vec3{}) {
		right = Vec3{X: 1}
	}
	up = right.Cross(forward)
	return right, up, forward
}

func (c Camera) tanHalfFOV() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// Project maps a world point to normalized device coordinates. depth is the
// distance along the view direction; ok is false for points not in front of
// the near plane.
func (c Camera) Project(p Vec3) (ndc Vec2, depth float64, ok bool) {
	right, up, forward := c.Basis()
	d := p.Sub(c.Position)
	depth = d.Dot(forward)
	if depth <= c.Near || (c.Far > 0 && depth > c.Far) {
		return Vec2{}, depth, false
	}
	th := c.tanHalfFOV()
	ndc.X = d.Dot(right) / (depth * th * c.Aspect)
	ndc.Y = d.Dot(up) / (depth * th)
	return ndc, depth, true
}

// RayFromNDC returns the view ray through the given NDC point.
func (c Camera) RayFromNDC(ndc Vec2) Ray {
	right, up, forward := c.Basis()
	th := c.tanHalfFOV()
	dir := forward.
		Add(right.Scale(ndc.X * th * c.Aspect)).
		Add(up.Scale(ndc.Y * th))
	return Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// ProjectedRadius converts a world radius at the given depth to pixels on a
// viewport of height h.
func (c Camera) ProjectedRadius(radius, depth, h float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * c.tanHalfFOV()) * h / 2
}

// NDCToScreen converts NDC ([-1,1], y up) to pixels (y down).
func NDCToScreen(ndc Vec2, w, h float64) Vec2 {
	return Vec2{
		X: (ndc.X + 1) / 2 * w,
		Y: (1 - ndc.Y) / 2 * h,
	}
}

// ScreenToNDC is the inverse of NDCToScreen.
func ScreenToNDC(p Vec2, w, h float64) Vec2 {
	if w <= 0 || h <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: p.X/w*2 - 1,
		Y: -(p.Y/h*2 - 1),
	}
}
