package focus

import (
	"math"
	"testing"

	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/memory"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStepZoom(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		zoom float64
		open bool
		want float64
	}{
		{"zoom_in", 0, true, 0.02},
		{"zoom_in_clamped", 0.99, true, 1},
		{"zoom_out", 0.5, false, 0.49},
		{"zoom_out_clamped", 0.005, false, 0},
		{"rest_stays", 0, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StepZoom(tc.zoom, tc.open, cfg); !near(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTickTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg)
	sel := memory.Selection{Index: 0, Open: true}
	target := common.Vec3{X: 10, Y: -4, Z: -2}

	start := c.Position()
	goal := c.Goal(target)
	c.Tick(&sel, &target, common.Vec2{})

	want := start.Add(goal.Sub(start).Scale(cfg.Damping))
	if !near(c.Position().X, want.X) || !near(c.Position().Y, want.Y) || !near(c.Position().Z, want.Z) {
		t.Fatalf("expected %v after one tick, got %v", want, c.Position())
	}
	if c.Look() != c.Aim(target) {
		t.Fatalf("camera should aim at the framed target, got %v", c.Look())
	}
	if !near(sel.Zoom, cfg.ZoomIn) {
		t.Fatalf("zoom should advance while open, got %v", sel.Zoom)
	}

	for i := 0; i < 600; i++ {
		c.Tick(&sel, &target, common.Vec2{})
	}
	if c.Position().DistanceTo(goal) > 1e-3 {
		t.Fatalf("camera should converge on %v, got %v", goal, c.Position())
	}
	if sel.Zoom != 1 {
		t.Fatalf("zoom should saturate at 1, got %v", sel.Zoom)
	}
}

func TestTickReturnsToRest(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg)
	sel := memory.Selection{Index: 0, Open: true}
	target := common.Vec3{X: 10}
	for i := 0; i < 100; i++ {
		c.Tick(&sel, &target, common.Vec2{})
	}

	sel = memory.Selection{Index: -1, Zoom: sel.Zoom}
	prev := c.Position().DistanceTo(cfg.Rest)
	for sel.Zoom > 0 {
		c.Tick(&sel, nil, common.Vec2{X: 1, Y: 1})
		if sel.Zoom == 0 {
			// This tick already eased toward the parallax pose.
			break
		}
		d := c.Position().DistanceTo(cfg.Rest)
		if d > prev+1e-12 {
			t.Fatalf("camera should keep approaching rest while zoom > 0")
		}
		prev = d
	}

	for i := 0; i < 600; i++ {
		c.Tick(&sel, nil, common.Vec2{X: 1, Y: 1})
	}
	goal := Parallax(cfg, common.Vec2{X: 1, Y: 1})
	if c.Position().DistanceTo(goal) > 1e-3 {
		t.Fatalf("camera should settle at parallax %v, got %v", goal, c.Position())
	}
}

func TestParallaxClamped(t *testing.T) {
	cfg := DefaultConfig()
	got := Parallax(cfg, common.Vec2{X: 5, Y: -3})
	want := common.Vec3{X: cfg.PanLimit, Y: cfg.PanLimit, Z: cfg.Rest.Z}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTargetFor(t *testing.T) {
	st := memory.NewState([]memory.Item{{Position: common.Vec3{X: 1}}, {Position: common.Vec3{X: 2}}})
	if TargetFor(st) != nil {
		t.Fatalf("no selection should mean no target")
	}
	st.Selection.Index = 1
	if p := TargetFor(st); p == nil || p.X != 2 {
		t.Fatalf("expected target at item 1, got %v", p)
	}
}
