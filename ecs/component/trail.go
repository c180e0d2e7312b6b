package component

import (
	"image/color"

	"github.com/milk9111/memorystars/common"
)

// Trail is the glowing path through the stars, drawn progressively.
type Trail struct {
	Points []common.Vec3
	// Lengths holds the cumulative arc length at each point.
	Lengths []float64
	Drawn   float64
	Speed   float64

	BaseOpacity float64
	OpacityGain float64
	Opacity     float64
	Color       color.RGBA
}

// Progress returns the drawn fraction in [0,1].
func (t *Trail) Progress() float64 {
	if t == nil || len(t.Points) == 0 {
		return 0
	}
	return common.Clamp(t.Drawn/float64(len(t.Points)), 0, 1)
}

// RevealedLength returns the arc length covered by the drawn part.
func (t *Trail) RevealedLength() float64 {
	if t == nil || len(t.Lengths) == 0 {
		return 0
	}
	return t.Progress() * t.Lengths[len(t.Lengths)-1]
}

var TrailComponent = NewComponent[Trail]()
