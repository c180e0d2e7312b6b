package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/memorystars/assets"
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/ecs/entity"
	"github.com/milk9111/memorystars/ecs/render"
	"github.com/milk9111/memorystars/ecs/system"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/tween"
)

const (
	baseWidth  = common.BaseWidth
	baseHeight = common.BaseHeight
)

var skyColor = color.RGBA{0x05, 0x02, 0x10, 0xff}

type Game struct {
	debug bool

	world     *ecs.World
	scene     *entity.Scene
	scheduler *ecs.Scheduler
	visuals   *system.VisualSystem
	renderer  *render.RenderSystem

	ui     *OverlayUI
	input  *Input
	reload *Reloader
}

func NewGame(scene *prefabs.SceneSpec, mem *prefabs.MemoriesSpec, content string, opts entity.Options) (*Game, error) {
	w := ecs.NewWorld()
	built, err := entity.NewScene(w, scene, mem, opts)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	face, err := assets.Face(18)
	if err != nil {
		log.Printf("game: %v", err)
	}
	ui := NewOverlayUI(face, NewClipboard())
	input := NewInput(ui, opts.Mobile)
	visuals := system.NewVisualSystem(loadHeartbeat(), scene.Stars.HoverScale)

	g := &Game{
		debug:    opts.Debug,
		world:    w,
		scene:    built,
		visuals:  visuals,
		renderer: render.NewRenderSystem(face),
		ui:       ui,
		input:    input,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(input),
		system.NewStartSystem(scene.Music.Track, scene.Music.Volume, scene.Music.FadeFrames),
		system.NewClockSystem(),
		system.NewHoverSystem(),
		system.NewSelectionSystem(),
		system.NewTimerSystem(),
		system.NewCameraSystem(),
		system.NewTrailSystem(),
		system.NewStardustSystem(scene.Stardust.Seed),
		visuals,
		system.NewMusicSystem(assets.LoadTrack),
		system.NewOverlaySystem(ui),
	)

	if opts.Debug {
		r, err := NewReloader(w, content, visuals)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.reload = r
		}
	}
	return g, nil
}

// loadHeartbeat compiles the heartbeat script, falling back to the built-in
// curve when it is missing or broken.
func loadHeartbeat() *tween.Curve {
	curve := &tween.Curve{Fallback: tween.HeartbeatLevel}
	src, err := prefabs.LoadScript(prefabs.HeartbeatScript)
	if err != nil {
		log.Printf("game: load %s: %v", prefabs.HeartbeatScript, err)
		return curve
	}
	script, err := tween.CompileScript(prefabs.HeartbeatScript, src)
	if err != nil {
		log.Printf("game: %v", err)
		return curve
	}
	curve.Script = script
	return curve
}

func (g *Game) Update() error {
	if g.reload != nil {
		g.reload.Poll()
	}
	if sess, ok := ecs.Get(g.world, g.scene.Session, component.SessionComponent.Kind()); ok {
		g.ui.SetStarted(sess.Started)
	}
	g.ui.Update()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.renderer.Draw(g.world, screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Ticks: %d    FPS: %.2f    TPS: %.2f", g.scheduler.Ticks(), ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.reload != nil {
		g.reload.Close()
	}
}
