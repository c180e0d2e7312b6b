package component

import (
	"image/color"

	"github.com/milk9111/memorystars/common"
)

// DustParticle sits on the trail until the drawn trail passes Activation,
// then bursts outward. Once active, x/y are driven by a physics body.
type DustParticle struct {
	Position   common.Vec3
	Velocity   common.Vec3
	Activation float64
	Active     bool
}

type Stardust struct {
	Particles []DustParticle
	BurstMin  float64
	BurstMax  float64
	// Damping is the per-tick velocity factor. The physics space applies it
	// to x/y; z is damped by hand.
	Damping float64
	Color   color.RGBA
}

var StardustComponent = NewComponent[Stardust]()
