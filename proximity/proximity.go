// Package proximity resolves a view ray to the narrative item it points at.
// Hover and click share one resolver; they differ only in mode and tolerance.
package proximity

import (
	"math"

	"github.com/milk9111/memorystars/common"
)

// Mode selects the resolution policy.
type Mode int

const (
	// Hover picks the nearest target strictly within tolerance of the ray.
	Hover Mode = iota
	// Click first hit-tests target spheres, then falls back to Hover.
	Click
)

func (m Mode) String() string {
	if m == Click {
		return "click"
	}
	return "hover"
}

// Target is a selectable point with a spherical hit volume.
type Target struct {
	Position common.Vec3
	Radius   float64
	// Disabled targets are skipped, e.g. hidden stars.
	Disabled bool
}

// Config holds the thresholds used by the scene.
type Config struct {
	HoverTolerance float64
	ClickTolerance float64
	HitRadius      float64
}

// DefaultConfig keeps hover tighter than click so highlighting only kicks in
// close to a star while taps stay forgiving.
func DefaultConfig() Config {
	return Config{
		HoverTolerance: 0.7,
		ClickTolerance: 0.8,
		HitRadius:      0.6,
	}
}

// Resolver returns the resolver for the given mode.
func (c Config) Resolver(mode Mode) Resolver {
	tol := c.HoverTolerance
	if mode == Click {
		tol = c.ClickTolerance
	}
	return Resolver{Mode: mode, Tolerance: tol}
}

// Resolver picks one target for a ray.
type Resolver struct {
	Mode      Mode
	Tolerance float64
}

// Resolve returns the index of the chosen target.
func (r Resolver) Resolve(ray common.Ray, targets []Target) (int, bool) {
	if r.Mode == Click {
		if i, ok := HitTest(ray, targets); ok {
			return i, true
		}
	}
	return Nearest(ray, targets, r.Tolerance)
}

// HitTest returns the target whose hit sphere the ray enters first.
func HitTest(ray common.Ray, targets []Target) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, t := range targets {
		if t.Disabled || t.Radius <= 0 {
			continue
		}
		d, ok := ray.IntersectSphere(t.Position, t.Radius)
		if ok && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// Nearest returns the target closest to the ray, if that distance is strictly
// below tolerance.
func Nearest(ray common.Ray, targets []Target, tolerance float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, t := range targets {
		if t.Disabled {
			continue
		}
		d := ray.DistanceToPoint(t.Position)
		if d < tolerance && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// PointerNDC returns the NDC point a ray should pass through: the pointer on
// desktop, the screen center on mobile.
func PointerNDC(mobile bool, pointer common.Vec2) common.Vec2 {
	if mobile {
		return common.Vec2{}
	}
	return pointer
}
