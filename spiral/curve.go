package spiral

import (
	"math"
	"sort"

	"github.com/milk9111/memorystars/common"
)

// DefaultDivisions is the trail sampling density.
const DefaultDivisions = 200

// Curve is an open Catmull-Rom spline through a list of control points.
type Curve struct {
	Points  []common.Vec3
	Tension float64
}

// NewCurve builds the trail through the item positions followed by the
// phantom point.
func NewCurve(layout Layout) Curve {
	points := make([]common.Vec3, 0, len(layout.Items)+1)
	for _, item := range layout.Items {
		points = append(points, item.Position)
	}
	points = append(points, layout.Phantom)
	return Curve{Points: points, Tension: 0.5}
}

// Point returns the point at parameter t in [0,1]. t is not arc-length
// uniform.
func (c Curve) Point(t float64) common.Vec3 {
	n := len(c.Points)
	switch n {
	case 0:
		return common.Vec3{}
	case 1:
		return c.Points[0]
	}

	t = common.Clamp(t, 0, 1)
	p := float64(n-1) * t
	seg := int(math.Floor(p))
	weight := p - float64(seg)
	if seg >= n-1 {
		seg = n - 2
		weight = 1
	}

	p0 := c.control(seg - 1)
	p1 := c.Points[seg]
	p2 := c.Points[seg+1]
	p3 := c.control(seg + 2)

	return common.Vec3{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, c.Tension, weight),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, c.Tension, weight),
		Z: catmullRom(p0.Z, p1.Z, p2.Z, p3.Z, c.Tension, weight),
	}
}

// control returns control point i, mirroring the end points for the open ends.
func (c Curve) control(i int) common.Vec3 {
	n := len(c.Points)
	if i < 0 {
		return c.Points[0].Scale(2).Sub(c.Points[1])
	}
	if i >= n {
		return c.Points[n-1].Scale(2).Sub(c.Points[n-2])
	}
	return c.Points[i]
}

func catmullRom(x0, x1, x2, x3, tension, t float64) float64 {
	t0 := tension * (x2 - x0)
	t1 := tension * (x3 - x1)
	c0 := x1
	c1 := t0
	c2 := -3*x1 + 3*x2 - 2*t0 - t1
	c3 := 2*x1 - 2*x2 + t0 + t1
	return c0 + c1*t + c2*t*t + c3*t*t*t
}

// Sample returns divisions+1 points evenly spaced in t.
func (c Curve) Sample(divisions int) []common.Vec3 {
	if divisions < 1 {
		divisions = 1
	}
	out := make([]common.Vec3, divisions+1)
	for i := range out {
		out[i] = c.Point(float64(i) / float64(divisions))
	}
	return out
}

// Lengths returns the cumulative arc length at each sample of Sample.
func (c Curve) Lengths(divisions int) []float64 {
	points := c.Sample(divisions)
	lengths := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		lengths[i] = lengths[i-1] + points[i].DistanceTo(points[i-1])
	}
	return lengths
}

// PointAt returns the point at arc-length fraction u in [0,1], using the given
// cumulative length table.
func (c Curve) PointAt(u float64, lengths []float64) common.Vec3 {
	if len(lengths) < 2 {
		return c.Point(u)
	}
	total := lengths[len(lengths)-1]
	target := common.Clamp(u, 0, 1) * total

	i := sort.SearchFloat64s(lengths, target)
	if i <= 0 {
		return c.Point(0)
	}
	if i >= len(lengths) {
		return c.Point(1)
	}

	segLen := lengths[i] - lengths[i-1]
	frac := 0.0
	if segLen > 0 {
		frac = (target - lengths[i-1]) / segLen
	}
	divisions := len(lengths) - 1
	return c.Point((float64(i-1) + frac) / float64(divisions))
}
