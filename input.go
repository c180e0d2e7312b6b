package main

import (
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/ecs/component"
)

// Input samples mouse, touch and keyboard once per tick and merges the
// overlay's button presses.
type Input struct {
	ui      *OverlayUI
	mobile  bool
	touches []ebiten.TouchID
}

func NewInput(ui *OverlayUI, mobile bool) *Input {
	return &Input{ui: ui, mobile: mobile}
}

func (i *Input) Poll(in *component.Input) {
	x, y := ebiten.CursorPosition()
	if !i.mobile {
		in.Pointer = common.ScreenToNDC(common.Vec2{X: float64(x), Y: float64(y)}, baseWidth, baseHeight)
	}
	in.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	if len(i.touches) > 0 {
		tx, ty := ebiten.TouchPosition(i.touches[0])
		in.Pointer = common.ScreenToNDC(common.Vec2{X: float64(tx), Y: float64(ty)}, baseWidth, baseHeight)
		in.Touch = true
		in.Click = true
		i.mobile = true
	}

	in.Next = inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyN)
	in.Close = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	in.Copy = ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.Start = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	in.UIBlocked = ebuiinput.UIHovered
	if i.ui == nil {
		return
	}
	act := i.ui.TakeActions()
	in.Next = in.Next || act.Next
	in.Close = in.Close || act.Close
	in.Copy = in.Copy || act.Copy
	if !i.ui.Started() {
		// Any click or tap on the start screen starts the scene.
		in.Start = in.Start || act.Start || in.Click
		in.Click = false
	}
}
