package entity

import (
	"testing"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/spiral"
)

func loadSpecs(t *testing.T) (*prefabs.SceneSpec, *prefabs.MemoriesSpec) {
	t.Helper()
	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	mem, err := prefabs.LoadMemoriesSpec(prefabs.MemoriesFile)
	if err != nil {
		t.Fatalf("load memories: %v", err)
	}
	scene.Stardust.Count = 100
	scene.Backdrop.Count = 50
	return scene, mem
}

func TestNewSceneBuildsEntities(t *testing.T) {
	scene, mem := loadSpecs(t)
	w := ecs.NewWorld()

	built, err := NewScene(w, scene, mem, Options{Mobile: true})
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}

	n := len(mem.Items)
	var stars, hidden int
	ecs.ForEach2(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, s *component.Star, tr *component.Transform) {
		stars++
		if s.Hidden {
			hidden++
			if s.Index != n {
				t.Fatalf("only the phantom star should be hidden, got index %d", s.Index)
			}
			if tr.Position != built.Layout.Phantom {
				t.Fatalf("phantom star at %v, want %v", tr.Position, built.Layout.Phantom)
			}
			return
		}
		if tr.Position != built.Layout.Items[s.Index].Position {
			t.Fatalf("star %d at %v, want %v", s.Index, tr.Position, built.Layout.Items[s.Index].Position)
		}
		if s.FlickerSpeed < scene.Stars.FlickerMin || s.FlickerSpeed > scene.Stars.FlickerMax {
			t.Fatalf("flicker speed %v outside configured range", s.FlickerSpeed)
		}
	})
	if stars != n+1 || hidden != 1 {
		t.Fatalf("expected %d stars with one hidden, got %d and %d", n+1, stars, hidden)
	}

	sess, ok := ecs.Get(w, built.Session, component.SessionComponent.Kind())
	if !ok || !sess.Mobile || sess.Started {
		t.Fatalf("expected an unstarted mobile session, got %+v", sess)
	}
	if len(sess.State.Items) != n || sess.State.Selection.Index != -1 {
		t.Fatalf("unexpected initial state: %d items, selection %+v", len(sess.State.Items), sess.State.Selection)
	}

	cam, ok := ecs.Get(w, built.Camera, component.CameraComponent.Kind())
	if !ok || cam.View.Position != scene.Camera.Rest.Vec3() {
		t.Fatalf("camera should start at rest")
	}

	center, ok := ecs.First(w, component.CenterComponent.Kind())
	if !ok {
		t.Fatalf("center star missing")
	}
	if c, _ := ecs.Get(w, center, component.CenterComponent.Kind()); c.Visible || c.Locked {
		t.Fatalf("center star should start hidden and unlocked")
	}

	if pw := w.PhysicsWorld(); pw == nil || pw.Len() != 0 {
		t.Fatalf("expected an empty physics world before any dust activates")
	}
	if _, ok := ecs.First(w, component.MusicPlayerComponent.Kind()); !ok {
		t.Fatalf("music player missing")
	}
}

func TestStardustFollowsCurve(t *testing.T) {
	scene, mem := loadSpecs(t)
	w := ecs.NewWorld()
	built, err := NewScene(w, scene, mem, Options{})
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}

	ent, _ := ecs.First(w, component.StardustComponent.Kind())
	dust, _ := ecs.Get(w, ent, component.StardustComponent.Kind())
	if len(dust.Particles) != scene.Stardust.Count {
		t.Fatalf("expected %d particles, got %d", scene.Stardust.Count, len(dust.Particles))
	}

	lengths := built.Curve.Lengths(scene.Trail.Divisions)
	total := lengths[len(lengths)-1]
	for i, p := range dust.Particles {
		if p.Active {
			t.Fatalf("particle %d should start inactive", i)
		}
		if p.Activation < 0 || p.Activation > total {
			t.Fatalf("particle %d activation %v outside [0,%v]", i, p.Activation, total)
		}
		want := built.Curve.PointAt(p.Activation/total, lengths)
		if d := p.Position.DistanceTo(want); d > 1e-6 {
			t.Fatalf("particle %d is %v off the curve", i, d)
		}
	}
}

func TestNewStarsPaletteCycles(t *testing.T) {
	scene, mem := loadSpecs(t)
	layout, err := spiral.Build(scene.SpiralParams(), mem.MemoryItems())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	w := ecs.NewWorld()
	ents, err := NewStars(w, scene, layout)
	if err != nil {
		t.Fatalf("NewStars failed: %v", err)
	}
	first, _ := ecs.Get(w, ents[0], component.StarComponent.Kind())
	again, _ := ecs.Get(w, ents[len(scene.Stars.Colors)], component.StarComponent.Kind())
	if first.Color != again.Color {
		t.Fatalf("palette should cycle: %v vs %v", first.Color, again.Color)
	}

	scene.Stars.Colors = []string{"not-a-color"}
	if _, err := NewStars(ecs.NewWorld(), scene, layout); err == nil {
		t.Fatalf("expected an error for an unknown color")
	}
}

func TestNewSceneFadeEase(t *testing.T) {
	tests := []struct {
		name    string
		ease    string
		wantErr bool
	}{
		{"default", "", false},
		{"named", "in_out_cubic", false},
		{"unknown", "bounce", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scene, mem := loadSpecs(t)
			scene.Reveal.FadeEase = tc.ease
			_, err := NewScene(ecs.NewWorld(), scene, mem, Options{})
			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}
