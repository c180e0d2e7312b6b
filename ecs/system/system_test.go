package system_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/ecs/entity"
	"github.com/milk9111/memorystars/ecs/system"
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/reveal"
)

type fakeSink struct {
	shown    []system.ItemEvent
	hidden   int
	messages []string
	copied   []string
}

func (s *fakeSink) ShowItem(ev system.ItemEvent) { s.shown = append(s.shown, ev) }
func (s *fakeSink) HideItem()                    { s.hidden++ }
func (s *fakeSink) ShowMessage(text string)      { s.messages = append(s.messages, text) }
func (s *fakeSink) Copy(text string)             { s.copied = append(s.copied, text) }

type harness struct {
	t     *testing.T
	w     *ecs.World
	scene *entity.Scene
	sched *ecs.Scheduler
	sink  *fakeSink
	next  component.Input
}

func newHarness(t *testing.T, n int) *harness {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	spec.Stardust.Count = 200
	spec.Backdrop.Count = 10

	mem := &prefabs.MemoriesSpec{
		Phantom:  prefabs.ItemSpec{Title: "phantom", Body: "not yet"},
		Messages: []string{"one", "two"},
	}
	for i := 0; i < n; i++ {
		mem.Items = append(mem.Items, prefabs.ItemSpec{Title: fmt.Sprintf("item %d", i), Body: "first<br>second"})
	}

	h := &harness{t: t, w: ecs.NewWorld(), sink: &fakeSink{}}
	h.scene, err = entity.NewScene(h.w, spec, mem, entity.Options{})
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	h.sched = ecs.NewScheduler(
		system.NewInputSystem(system.PollerFunc(func(in *component.Input) { *in = h.next })),
		system.NewClockSystem(),
		system.NewHoverSystem(),
		system.NewSelectionSystem(),
		system.NewTimerSystem(),
		system.NewCameraSystem(),
		system.NewTrailSystem(),
		system.NewStardustSystem(1),
		system.NewVisualSystem(nil, 1.25),
		system.NewOverlaySystem(h.sink),
	)
	h.session().Started = true
	return h
}

func (h *harness) session() *component.Session {
	sess, ok := ecs.Get(h.w, h.scene.Session, component.SessionComponent.Kind())
	if !ok {
		h.t.Fatalf("session missing")
	}
	return sess
}

func (h *harness) state() *memory.State {
	return h.session().State
}

func (h *harness) camera() *component.Camera {
	cam, ok := ecs.Get(h.w, h.scene.Camera, component.CameraComponent.Kind())
	if !ok {
		h.t.Fatalf("camera missing")
	}
	return cam
}

func (h *harness) tick(in component.Input) {
	h.next = in
	h.sched.Update(h.w)
}

func (h *harness) idle(n int) {
	for i := 0; i < n; i++ {
		h.tick(component.Input{})
	}
}

// pointAt returns the pointer position over p in the current view.
func (h *harness) pointAt(p common.Vec3) common.Vec2 {
	h.t.Helper()
	ndc, _, ok := h.camera().View.Project(p)
	if !ok {
		h.t.Fatalf("point %v not visible", p)
	}
	return ndc
}

func (h *harness) clickAt(p common.Vec3) {
	h.tick(component.Input{Pointer: h.pointAt(p), Click: true})
}

func (h *harness) star(index int) *component.Star {
	var found *component.Star
	ecs.ForEach(h.w, component.StarComponent.Kind(), func(_ ecs.Entity, s *component.Star) {
		if s.Index == index {
			found = s
		}
	})
	if found == nil {
		h.t.Fatalf("star %d missing", index)
	}
	return found
}

func (h *harness) center() *component.Center {
	ent, ok := ecs.First(h.w, component.CenterComponent.Kind())
	if !ok {
		h.t.Fatalf("center missing")
	}
	c, _ := ecs.Get(h.w, ent, component.CenterComponent.Kind())
	return c
}

func TestClickOpensAndCameraFocuses(t *testing.T) {
	h := newHarness(t, 6)
	st := h.state()
	item := st.Items[3]

	h.clickAt(item.Position)
	if !st.Selection.Open || st.Selection.Index != 3 {
		t.Fatalf("expected item 3 open, got %+v", st.Selection)
	}
	if len(h.sink.shown) != 1 || h.sink.shown[0].Title != "item 3" || !h.sink.shown[0].HasNext {
		t.Fatalf("expected overlay for item 3, got %+v", h.sink.shown)
	}
	if got := h.sink.shown[0].Lines; len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected body split into lines, got %q", got)
	}

	h.idle(250)
	ctrl := h.camera().Controller
	if d := ctrl.Position().DistanceTo(ctrl.Goal(item.Position)); d > 0.01 {
		t.Fatalf("camera should settle on the item, still %v away", d)
	}
	if st.Selection.Zoom != 1 {
		t.Fatalf("expected full zoom, got %v", st.Selection.Zoom)
	}
	if !h.star(3).Selected {
		t.Fatalf("open star should be marked selected")
	}
}

func TestClickSuppressed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		in    func(h *harness) component.Input
	}{
		{
			name:  "not_started",
			setup: func(h *harness) { h.session().Started = false },
			in: func(h *harness) component.Input {
				return component.Input{Pointer: h.pointAt(h.state().Items[1].Position), Click: true}
			},
		},
		{
			name:  "ui_blocked",
			setup: func(h *harness) {},
			in: func(h *harness) component.Input {
				return component.Input{Pointer: h.pointAt(h.state().Items[1].Position), Click: true, UIBlocked: true}
			},
		},
		{
			name:  "miss",
			setup: func(h *harness) {},
			in: func(h *harness) component.Input {
				return component.Input{Pointer: common.Vec2{X: 0.95, Y: 0.95}, Click: true}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, 4)
			tc.setup(h)
			h.tick(tc.in(h))
			if h.state().Selection.Open {
				t.Fatalf("click should not open anything")
			}
		})
	}
}

func TestClickIgnoredWhileOpen(t *testing.T) {
	h := newHarness(t, 4)
	st := h.state()
	h.clickAt(st.Items[0].Position)
	h.clickAt(st.Items[2].Position)
	if st.Selection.Index != 0 || len(h.sink.shown) != 1 {
		t.Fatalf("second click should be ignored while open, got %+v", st.Selection)
	}
}

func TestKeyboardNextCloseCopy(t *testing.T) {
	h := newHarness(t, 3)
	st := h.state()

	h.clickAt(st.Items[1].Position)
	h.tick(component.Input{Next: true})
	if st.Selection.Index != 2 || h.sink.shown[len(h.sink.shown)-1].HasNext {
		t.Fatalf("expected last item without next, got %+v", st.Selection)
	}
	h.tick(component.Input{Next: true})
	if st.Selection.Index != 2 {
		t.Fatalf("next at the end should be a no-op, got %d", st.Selection.Index)
	}

	h.tick(component.Input{Copy: true})
	if len(h.sink.copied) != 1 || h.sink.copied[0] != "item 2\n\nfirst\nsecond" {
		t.Fatalf("unexpected copy %q", h.sink.copied)
	}

	h.tick(component.Input{Close: true})
	if st.Selection.Open || h.sink.hidden != 1 {
		t.Fatalf("expected overlay closed, got %+v hidden=%d", st.Selection, h.sink.hidden)
	}
}

func TestHoverHighlightsNearestOnly(t *testing.T) {
	h := newHarness(t, 8)
	st := h.state()
	pointer := h.pointAt(st.Items[5].Position)

	h.tick(component.Input{Pointer: pointer})
	for i := range st.Items {
		if got := h.star(i).Hovered; got != (i == 5) {
			t.Fatalf("star %d hovered=%v", i, got)
		}
	}
	hover, _ := ecs.Get(h.w, h.scene.Session, component.HoverComponent.Kind())
	if !hover.Visible || hover.Title != "item 5" {
		t.Fatalf("expected tooltip for item 5, got %+v", hover)
	}

	h.clickAt(st.Items[5].Position)
	h.tick(component.Input{Pointer: pointer})
	if h.star(5).Hovered || hover.Visible {
		t.Fatalf("hover should clear while an item is open")
	}
}

func TestRevealFlow(t *testing.T) {
	const n = 3
	h := newHarness(t, n)
	st := h.state()
	sess := h.session()

	if !h.star(n).Hidden {
		t.Fatalf("phantom star should start hidden")
	}

	h.clickAt(st.Items[n-1].Position)
	h.tick(component.Input{Close: true})
	if sess.Sequencer.Phase(st) != reveal.PhasePhantomPending {
		t.Fatalf("expected phantom pending, got %v", sess.Sequencer.Phase(st))
	}
	phantom := h.star(n)
	if phantom.Hidden {
		t.Fatalf("phantom star should be visible")
	}
	h.idle(5)
	if phantom.Opacity <= 0 || phantom.Opacity >= 1 {
		t.Fatalf("phantom should be fading in, opacity %v", phantom.Opacity)
	}

	h.clickAt(st.Items[n].Position)
	if !st.Selection.Open || st.Selection.Index != n {
		t.Fatalf("expected phantom open, got %+v", st.Selection)
	}
	h.tick(component.Input{Close: true})
	if sess.Sequencer.Phase(st) != reveal.PhaseCenterPending || h.center().Visible {
		t.Fatalf("expected center pending and hidden")
	}

	h.idle(119)
	if !h.center().Visible || !h.center().Locked {
		t.Fatalf("center should be visible and locked after its delay")
	}

	h.clickAt(common.Vec3{})
	if sess.Sequencer.Phase(st) != reveal.PhaseFinale || h.center().Locked {
		t.Fatalf("center click should unlock and start the finale, got %v", sess.Sequencer.Phase(st))
	}
	h.idle(90 + 240)
	if len(h.sink.messages) != 2 || h.sink.messages[0] != "one" || h.sink.messages[1] != "two" {
		t.Fatalf("expected both messages in order, got %v", h.sink.messages)
	}

	h.clickAt(common.Vec3{})
	h.idle(400)
	if len(h.sink.messages) != 2 {
		t.Fatalf("finale should only play once, got %v", h.sink.messages)
	}
}

func TestMobileUsesCenterRay(t *testing.T) {
	h := newHarness(t, 5)
	h.session().Mobile = true
	target := h.state().Items[2].Position
	h.camera().View = common.NewCamera(target.Add(common.Vec3{Z: 30}), target)

	h.tick(component.Input{Pointer: common.Vec2{X: 0.9, Y: -0.9}, Click: true, Touch: true})
	if st := h.state(); !st.Selection.Open || st.Selection.Index != 2 {
		t.Fatalf("expected the centered item, got %+v", st.Selection)
	}
}

func TestTouchSwitchesToMobile(t *testing.T) {
	h := newHarness(t, 5)
	if h.session().Mobile {
		t.Fatalf("session should start in desktop mode")
	}
	target := h.state().Items[2].Position
	h.camera().View = common.NewCamera(target.Add(common.Vec3{Z: 30}), target)

	h.tick(component.Input{Pointer: common.Vec2{X: 0.9, Y: -0.9}, Click: true, Touch: true})
	if !h.session().Mobile {
		t.Fatalf("a touch should switch the session to mobile")
	}
	if st := h.state(); !st.Selection.Open || st.Selection.Index != 2 {
		t.Fatalf("expected the centered item, got %+v", st.Selection)
	}
}

func TestTrailAndStardust(t *testing.T) {
	h := newHarness(t, 6)
	ent, _ := ecs.First(h.w, component.TrailComponent.Kind())
	trail, _ := ecs.Get(h.w, ent, component.TrailComponent.Kind())
	dustEnt, _ := ecs.First(h.w, component.StardustComponent.Kind())
	dust, _ := ecs.Get(h.w, dustEnt, component.StardustComponent.Kind())

	h.idle(100)
	if math.Abs(trail.Drawn-20) > 1e-6 {
		t.Fatalf("expected 20 points drawn, got %v", trail.Drawn)
	}
	if want := trail.BaseOpacity + trail.Progress()*trail.OpacityGain; math.Abs(trail.Opacity-want) > 1e-9 {
		t.Fatalf("expected opacity %v, got %v", want, trail.Opacity)
	}

	revealed := trail.RevealedLength()
	for i, p := range dust.Particles {
		if p.Active != (p.Activation <= revealed) {
			t.Fatalf("particle %d active=%v at activation %v, revealed %v", i, p.Active, p.Activation, revealed)
		}
	}

	h.idle(5000)
	if trail.Progress() != 1 {
		t.Fatalf("trail should be fully drawn, progress %v", trail.Progress())
	}
	for i, p := range dust.Particles {
		if !p.Active {
			t.Fatalf("particle %d should be active once the trail is drawn", i)
		}
		if p.Velocity.Len() > 1e-6 {
			t.Fatalf("particle %d should have come to rest, speed %v", i, p.Velocity.Len())
		}
	}
}

func TestTimersFireInOrder(t *testing.T) {
	w := ecs.NewWorld()
	timers := system.NewTimers(w)
	sched := ecs.NewScheduler(system.NewTimerSystem())

	var fired []string
	timers.After(3, func() { fired = append(fired, "a") })
	timers.After(1, func() { fired = append(fired, "b") })
	timers.After(3, func() { fired = append(fired, "c") })
	timers.After(0, func() { fired = append(fired, "d") })

	sched.Update(w)
	if len(fired) != 2 || fired[0] != "b" || fired[1] != "d" {
		t.Fatalf("expected b then d on the first tick, got %v", fired)
	}
	sched.Update(w)
	sched.Update(w)
	if len(fired) != 4 || fired[2] != "a" || fired[3] != "c" {
		t.Fatalf("expected a then c on the third tick, got %v", fired)
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("expired timers should be destroyed, %d left", n)
	}
}

func TestVisualsFollowSelection(t *testing.T) {
	h := newHarness(t, 5)
	st := h.state()

	pulseEnt, _ := ecs.First(h.w, component.AttentionPulseComponent.Kind())
	pulse, _ := ecs.Get(h.w, pulseEnt, component.AttentionPulseComponent.Kind())
	auraEnt, _ := ecs.First(h.w, component.AuraComponent.Kind())
	aura, _ := ecs.Get(h.w, auraEnt, component.AuraComponent.Kind())

	h.idle(1)
	if pulse.Hidden || aura.Visible {
		t.Fatalf("attention ring should show and aura hide before anything is opened")
	}

	h.clickAt(st.Items[2].Position)
	h.idle(30)
	if !pulse.Hidden {
		t.Fatalf("attention ring should hide once an item was opened")
	}
	if !aura.Visible {
		t.Fatalf("aura should follow the open star")
	}
	auraPos, _ := ecs.Get(h.w, auraEnt, component.TransformComponent.Kind())
	if auraPos.Position != st.Items[2].Position {
		t.Fatalf("aura at %v, want %v", auraPos.Position, st.Items[2].Position)
	}
	if glow := h.star(2).Glow; glow < 1.5 || glow > 5 {
		t.Fatalf("selected glow out of range: %v", glow)
	}
	if h.star(4).Selected {
		t.Fatalf("only the open star is selected")
	}

	h.tick(component.Input{Close: true})
	h.idle(1)
	if aura.Visible || h.star(2).Selected {
		t.Fatalf("aura and selection should clear after closing")
	}
	if !pulse.Hidden {
		t.Fatalf("attention ring should stay dismissed")
	}
}

func TestHeartbeatRestartsOnOpen(t *testing.T) {
	h := newHarness(t, 5)
	auraEnt, _ := ecs.First(h.w, component.AuraComponent.Kind())
	aura, _ := ecs.Get(h.w, auraEnt, component.AuraComponent.Kind())

	h.idle(8)
	h.clickAt(h.state().Items[2].Position)
	if !h.state().Selection.Open {
		t.Fatalf("click should open item 2")
	}
	if glow := h.star(2).Glow; math.Abs(glow-1.5) > 1e-9 {
		t.Fatalf("beat should start at rest on the opening tick, got %v", glow)
	}
	if math.Abs(aura.Scale-1) > 1e-9 || math.Abs(aura.Opacity-0.7) > 1e-9 {
		t.Fatalf("aura should start at rest, got scale %v opacity %v", aura.Scale, aura.Opacity)
	}

	h.idle(9)
	if glow := h.star(2).Glow; math.Abs(glow-5) > 1e-6 {
		t.Fatalf("first beat should peak 150ms after opening, got %v", glow)
	}
}

func TestStartGesture(t *testing.T) {
	h := newHarness(t, 3)
	sess := h.session()
	sess.Started = false
	start := ecs.NewScheduler(system.NewInputSystem(system.PollerFunc(func(in *component.Input) { *in = h.next })), system.NewStartSystem("ambient.wav", 0.6, 120))

	h.next = component.Input{Click: true}
	start.Update(h.w)
	if sess.Started {
		t.Fatalf("a plain click should not start the scene")
	}

	h.next = component.Input{Start: true}
	start.Update(h.w)
	if !sess.Started {
		t.Fatalf("start gesture should start the scene")
	}
	ent, ok := ecs.First(h.w, component.MusicRequestComponent.Kind())
	if !ok {
		t.Fatalf("start should request music")
	}
	req, _ := ecs.Get(h.w, ent, component.MusicRequestComponent.Kind())
	if req.Track != "ambient.wav" || req.Volume != 0.6 || req.FadeFrames != 120 {
		t.Fatalf("unexpected music request %+v", req)
	}
}

func TestApplyContent(t *testing.T) {
	h := newHarness(t, 3)
	st := h.state()
	h.clickAt(st.Items[0].Position)

	items := []memory.Item{{Title: "new 0", Body: "changed"}, {Title: "new 1"}, {Title: "new 2"}}
	if err := system.ApplyContent(h.w, items, memory.Item{Title: "new phantom"}, []string{"hi"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	h.idle(1)
	last := h.sink.shown[len(h.sink.shown)-1]
	if last.Title != "new 0" || len(last.Lines) != 1 || last.Lines[0] != "changed" {
		t.Fatalf("open overlay should refresh, got %+v", last)
	}

	if err := system.ApplyContent(h.w, items[:2], memory.Item{}, nil); err == nil {
		t.Fatalf("expected an error for a changed item count")
	}

	h.tick(component.Input{Close: true})
	h.clickAt(st.Items[2].Position)
	h.tick(component.Input{Close: true})
	if got := st.Items[3].Title; got != "new phantom" {
		t.Fatalf("phantom should use the reloaded text, got %q", got)
	}
}
