// Package render draws the scene entities with ebiten. It reads the state the
// systems left behind and never mutates it.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	backdropColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	auraColor     = color.RGBA{0xff, 0x69, 0xb4, 0xff}
	lockColor     = colornames.Goldenrod
	tooltipColor  = colornames.White

	trailCoreColor = color.RGBA{0xff, 0xf4, 0xfa, 0xff}
)

type RenderSystem struct {
	face text.Face
}

// NewRenderSystem draws tooltips with face; a nil face skips them.
func NewRenderSystem(face text.Face) *RenderSystem {
	return &RenderSystem{face: face}
}

// viewport projects world points onto the screen.
type viewport struct {
	cam  common.Camera
	w, h float64
}

func (v viewport) project(p common.Vec3) (common.Vec2, float64, bool) {
	ndc, depth, ok := v.cam.Project(p)
	if !ok {
		return common.Vec2{}, depth, false
	}
	return common.NDCToScreen(ndc, v.w, v.h), depth, true
}

func (v viewport) radius(r, depth float64) float64 {
	return v.cam.ProjectedRadius(r, depth, v.h)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	if !ok {
		return
	}
	b := screen.Bounds()
	vp := viewport{cam: cam.View, w: float64(b.Dx()), h: float64(b.Dy())}

	zoom := 0.0
	if sessEnt, ok := ecs.First(w, component.SessionComponent.Kind()); ok {
		if sess, ok := ecs.Get(w, sessEnt, component.SessionComponent.Kind()); ok && sess.State != nil {
			zoom = sess.State.Selection.Zoom
		}
	}

	r.drawBackdrop(w, screen, vp)
	r.drawTrail(w, screen, vp, zoom)
	r.drawDust(w, screen, vp)
	r.drawAura(w, screen, vp)
	r.drawStars(w, screen, vp)
	r.drawCenter(w, screen, vp)
	r.drawPulse(w, screen, vp)
	r.drawTooltip(w, screen, vp)
}

func (r *RenderSystem) drawBackdrop(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach(w, component.BackdropComponent.Kind(), func(_ ecs.Entity, bd *component.Backdrop) {
		for _, p := range bd.Points {
			pos, depth, ok := vp.project(p.RotateY(bd.Rotation))
			if !ok {
				continue
			}
			a := common.Clamp(1-depth/400, 0.15, 0.8)
			vector.FillRect(screen, float32(pos.X), float32(pos.Y), 1, 1, fade(backdropColor, a), false)
		}
	})
}

func (r *RenderSystem) drawTrail(w *ecs.World, screen *ebiten.Image, vp viewport, zoom float64) {
	ecs.ForEach(w, component.TrailComponent.Kind(), func(_ ecs.Entity, tr *component.Trail) {
		n := int(tr.Drawn)
		if n > len(tr.Points) {
			n = len(tr.Points)
		}
		if n < 2 {
			return
		}
		screenPts := make([]common.Vec2, n)
		visible := make([]bool, n)
		for i, p := range tr.Points[:n] {
			screenPts[i], _, visible[i] = vp.project(p)
		}
		// The trail fades out while an item is open.
		for _, st := range trailStrokes(tr.Color, tr.Opacity*(1-zoom)) {
			for i := 1; i < n; i++ {
				if !visible[i-1] || !visible[i] {
					continue
				}
				a, b := screenPts[i-1], screenPts[i]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), st.width, st.color, true)
			}
		}
	})
}

type stroke struct {
	width float32
	color color.RGBA
}

// trailStrokes layers the trail widest first: two faint mist bands, the
// colored spine, then a thin bright core.
func trailStrokes(base color.RGBA, alpha float64) []stroke {
	return []stroke{
		{width: 14, color: fade(base, alpha*0.12)},
		{width: 6, color: fade(base, alpha*0.3)},
		{width: 2, color: fade(base, alpha)},
		{width: 0.8, color: fade(trailCoreColor, alpha)},
	}
}

func (r *RenderSystem) drawDust(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach(w, component.StardustComponent.Kind(), func(_ ecs.Entity, dust *component.Stardust) {
		clr := fade(dust.Color, 0.8)
		for i := range dust.Particles {
			p := &dust.Particles[i]
			if !p.Active {
				continue
			}
			pos, _, ok := vp.project(p.Position)
			if !ok {
				continue
			}
			vector.FillRect(screen, float32(pos.X), float32(pos.Y), 1.5, 1.5, clr, false)
		}
	})
}

type starDraw struct {
	star  *component.Star
	pos   common.Vec2
	depth float64
}

func (r *RenderSystem) drawStars(w *ecs.World, screen *ebiten.Image, vp viewport) {
	var stars []starDraw
	ecs.ForEach2(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, s *component.Star, tr *component.Transform) {
		if s.Hidden || s.Opacity <= 0 {
			return
		}
		pos, depth, ok := vp.project(tr.Position)
		if !ok {
			return
		}
		stars = append(stars, starDraw{star: s, pos: pos, depth: depth})
	})
	// Far stars first so near ones paint over them.
	sort.Slice(stars, func(i, j int) bool { return stars[i].depth > stars[j].depth })

	for _, sd := range stars {
		s := sd.star
		px := vp.radius(s.Radius*s.Scale, sd.depth)
		drawGlow(screen, sd.pos, px*(1+s.Glow*0.6), s.Color, s.Opacity*common.Clamp(s.Glow/5, 0.2, 1))
		vector.FillCircle(screen, float32(sd.pos.X), float32(sd.pos.Y), float32(px), fade(s.Color, s.Opacity), true)
	}
}

func (r *RenderSystem) drawCenter(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach2(w, component.CenterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Center, tr *component.Transform) {
		if !c.Visible {
			return
		}
		pos, depth, ok := vp.project(tr.Position)
		if !ok {
			return
		}
		opacity := 1.0
		if f, ok := ecs.Get(w, e, component.FadeComponent.Kind()); ok {
			opacity = f.Value
		}
		px := vp.radius(c.Radius, depth)
		drawGlow(screen, pos, px*(1+c.Glow*0.8), c.Color, opacity*common.Clamp(c.Glow/4, 0.3, 1))
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(px), fade(c.Color, opacity), true)
		if c.Locked {
			drawLock(screen, pos, px, opacity)
		}
	})
}

// drawLock draws a small padlock below the star.
func drawLock(screen *ebiten.Image, pos common.Vec2, px, opacity float64) {
	size := math.Max(px*0.8, 6)
	x := pos.X - size/2
	y := pos.Y + px*1.4
	clr := fade(lockColor, opacity)
	vector.StrokeCircle(screen, float32(pos.X), float32(y), float32(size*0.35), float32(math.Max(size*0.12, 1)), clr, true)
	vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size*0.8), clr, true)
}

func (r *RenderSystem) drawPulse(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach2(w, component.AttentionPulseComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.AttentionPulse, tr *component.Transform) {
		if p.Hidden {
			return
		}
		pos, depth, ok := vp.project(tr.Position)
		if !ok {
			return
		}
		px := vp.radius(0.8*p.Scale, depth)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(px), 2, fade(tooltipColor, p.Opacity), true)
	})
}

func (r *RenderSystem) drawAura(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach2(w, component.AuraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.Aura, tr *component.Transform) {
		if !a.Visible {
			return
		}
		pos, depth, ok := vp.project(tr.Position)
		if !ok {
			return
		}
		drawGlow(screen, pos, vp.radius(1.4*a.Scale, depth), auraColor, a.Opacity*0.6)
	})
}

func (r *RenderSystem) drawTooltip(w *ecs.World, screen *ebiten.Image, vp viewport) {
	if r.face == nil {
		return
	}
	ent, ok := ecs.First(w, component.HoverComponent.Kind())
	if !ok {
		return
	}
	hover, ok := ecs.Get(w, ent, component.HoverComponent.Kind())
	if !ok || !hover.Visible || hover.Title == "" {
		return
	}

	var anchor common.Vec3
	found := false
	ecs.ForEach2(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, s *component.Star, tr *component.Transform) {
		if s.Index == hover.Index {
			anchor, found = tr.Position, true
		}
	})
	if !found {
		return
	}
	pos, _, ok := vp.project(anchor)
	if !ok {
		return
	}

	tw, th := text.Measure(hover.Title, r.face, 0)
	x := pos.X - tw/2
	y := pos.Y - th - 24
	vector.FillRect(screen, float32(x-8), float32(y-4), float32(tw+16), float32(th+8), color.RGBA{0x10, 0x08, 0x20, 0xc0}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tooltipColor)
	text.Draw(screen, hover.Title, r.face, op)
}

// drawGlow draws the additive glow sprite centered on pos with the given
// pixel radius.
func drawGlow(screen *ebiten.Image, pos common.Vec2, radius float64, clr color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	img := GlowImage()
	scale := radius * 2 / float64(glowSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(glowSize)/2, -float64(glowSize)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(common.Clamp(alpha, 0, 1)))
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(img, op)
}

// fade scales a premultiplied color by a.
func fade(c color.RGBA, a float64) color.RGBA {
	a = common.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
