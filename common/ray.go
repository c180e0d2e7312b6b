package common

import "math"

// Ray is a half-line starting at Origin. Dir must be normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// DistanceToPoint returns the shortest distance from p to the ray. Points
// behind the origin measure against the origin itself.
func (r Ray) DistanceToPoint(p Vec3) float64 {
	t := p.Sub(r.Origin).Dot(r.Dir)
	if t < 0 {
		return r.Origin.DistanceTo(p)
	}
	return r.At(t).DistanceTo(p)
}

// IntersectSphere returns the distance along the ray to the first surface
// point of the sphere. An origin inside the sphere reports the exit point.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	toCenter := center.Sub(r.Origin)
	tca := toCenter.Dot(r.Dir)
	d2 := toCenter.Dot(toCenter) - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}
