// Package spiral places narrative items along an expanding polar spiral and
// derives the phantom point that continues it.
package spiral

import (
	"errors"
	"math"

	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/memory"
)

var ErrTooFewItems = errors.New("spiral: layout needs at least 2 items")

// Params describe the spiral. Radius and z grow linearly with the item index;
// the angle advances by a fixed step.
type Params struct {
	StartRadius float64
	RadiusStep  float64
	AngleStep   float64
	ZStep       float64
}

// DefaultParams keeps the first star clear of the center clump.
func DefaultParams() Params {
	return Params{
		StartRadius: 3.5,
		RadiusStep:  1.15,
		AngleStep:   math.Pi / 3.2,
		ZStep:       -0.5,
	}
}

// Place returns the position of item i.
func Place(p Params, i int) common.Vec3 {
	fi := float64(i)
	r := p.StartRadius + p.RadiusStep*fi
	sin, cos := math.Sincos(fi * p.AngleStep)
	return common.Vec3{
		X: r * cos,
		Y: r * sin,
		Z: p.ZStep * fi,
	}
}

// Layout is the result of placing a list of items.
type Layout struct {
	Params  Params
	Items   []memory.Item
	Phantom common.Vec3
}

// Build assigns positions to a copy of items and derives the phantom point.
func Build(p Params, items []memory.Item) (Layout, error) {
	if len(items) < 2 {
		return Layout{}, ErrTooFewItems
	}

	placed := make([]memory.Item, len(items))
	for i, item := range items {
		item.Position = Place(p, i)
		placed[i] = item
	}

	n := len(placed)
	return Layout{
		Params:  p,
		Items:   placed,
		Phantom: Extrapolate(placed[n-2].Position, placed[n-1].Position),
	}, nil
}

// Polar returns the radius and angle of v around the z axis.
func Polar(v common.Vec3) (radius, angle float64) {
	return math.Hypot(v.X, v.Y), math.Atan2(v.Y, v.X)
}

// Extrapolate continues the step from prev to last by one more step with the
// same angle and radius deltas, preserving the z trend.
func Extrapolate(prev, last common.Vec3) common.Vec3 {
	rPrev, aPrev := Polar(prev)
	rLast, aLast := Polar(last)

	angle := aLast + wrapAngle(aLast-aPrev)
	radius := rLast + (rLast - rPrev)

	sin, cos := math.Sincos(angle)
	return common.Vec3{
		X: cos * radius,
		Y: sin * radius,
		Z: last.Z + (last.Z - prev.Z),
	}
}

// wrapAngle maps a into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
