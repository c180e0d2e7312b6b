package common

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestRayDistanceToPoint(t *testing.T) {
	ray := Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}}

	tests := []struct {
		name  string
		point Vec3
		want  float64
	}{
		{"on_ray", Vec3{Z: -5}, 0},
		{"beside_ray", Vec3{X: 3, Z: -5}, 3},
		{"behind_origin", Vec3{X: 3, Z: 4}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ray.DistanceToPoint(tc.point); !near(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRayIntersectSphere(t *testing.T) {
	ray := Ray{Origin: Vec3{Z: 10}, Dir: Vec3{Z: -1}}

	tests := []struct {
		name   string
		center Vec3
		radius float64
		hit    bool
		dist   float64
	}{
		{"front_hit", Vec3{}, 1, true, 9},
		{"miss", Vec3{X: 2}, 1, false, 0},
		{"behind", Vec3{Z: 20}, 1, false, 0},
		{"inside", Vec3{Z: 10}, 1, true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := ray.IntersectSphere(tc.center, tc.radius)
			if ok != tc.hit {
				t.Fatalf("expected hit=%v, got %v", tc.hit, ok)
			}
			if ok && !near(d, tc.dist) {
				t.Fatalf("expected distance %v, got %v", tc.dist, d)
			}
		})
	}
}

func TestCameraProjectRoundTrip(t *testing.T) {
	cam := NewCamera(Vec3{X: 1, Y: -2, Z: 30}, Vec3{X: 3, Y: 1})

	for _, ndc := range []Vec2{{0, 0}, {0.5, -0.25}, {-0.9, 0.8}} {
		ray := cam.RayFromNDC(ndc)
		p := ray.At(12)
		got, depth, ok := cam.Project(p)
		if !ok {
			t.Fatalf("point along view ray should be visible")
		}
		if depth <= 0 {
			t.Fatalf("expected positive depth, got %v", depth)
		}
		if !near(got.X, ndc.X) || !near(got.Y, ndc.Y) {
			t.Fatalf("expected ndc %v, got %v", ndc, got)
		}
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewCamera(Vec3{Z: 30}, Vec3{})
	if _, _, ok := cam.Project(Vec3{Z: 40}); ok {
		t.Fatalf("point behind the camera should not project")
	}
}

func TestScreenNDCRoundTrip(t *testing.T) {
	p := Vec2{X: 320, Y: 600}
	back := NDCToScreen(ScreenToNDC(p, BaseWidth, BaseHeight), BaseWidth, BaseHeight)
	if math.Abs(back.X-p.X) > eps || math.Abs(back.Y-p.Y) > eps {
		t.Fatalf("expected %v, got %v", p, back)
	}
	center := ScreenToNDC(Vec2{X: BaseWidth / 2, Y: BaseHeight / 2}, BaseWidth, BaseHeight)
	if !near(center.X, 0) || !near(center.Y, 0) {
		t.Fatalf("screen center should map to ndc origin, got %v", center)
	}
}
