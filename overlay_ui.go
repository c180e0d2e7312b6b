package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/memorystars/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	panelWidth    = 460
	bodyWidth     = panelWidth - 60
	messageFrames = 300
	copiedFrames  = 90
)

var (
	panelColor  = color.NRGBA{R: 0x12, G: 0x08, B: 0x24, A: 0xd8}
	bannerColor = color.NRGBA{R: 0x12, G: 0x08, B: 0x24, A: 0xb0}
	titleColor  = colornames.Plum
	bodyColor   = color.NRGBA{R: 0xf0, G: 0xe6, B: 0xf8, A: 0xff}
)

// Actions are the overlay buttons pressed since the last poll.
type Actions struct {
	Next  bool
	Close bool
	Copy  bool
	Start bool
}

// OverlayUI is the item panel, the message banner and the start screen. It
// presents the events the overlay system drains from the world.
type OverlayUI struct {
	ui   *ebitenui.UI
	face ebtext.Face
	clip *Clipboard

	panel   *widget.Container
	title   *widget.Text
	body    *widget.Text
	nextBtn *widget.Button

	banner       *widget.Container
	bannerText   *widget.Text
	bannerFrames int

	start   *widget.Container
	started bool

	pending Actions
}

func NewOverlayUI(face ebtext.Face, clip *Clipboard) *OverlayUI {
	if face == nil {
		face = ebtext.NewGoXFace(basicfont.Face7x13)
	}
	o := &OverlayUI{face: face, clip: clip}

	theme := newOverlayTheme(&o.face)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(o.buildPanel(theme))
	root.AddChild(o.buildBanner())
	root.AddChild(o.buildStart(theme))

	o.ui = &ebitenui.UI{Container: root, PrimaryTheme: theme}
	o.setVisible(o.panel, false)
	o.setVisible(o.banner, false)
	return o
}

func newOverlayTheme(face *ebtext.Face) *widget.Theme {
	return &widget.Theme{
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x3a, G: 0x22, B: 0x5c, A: 0xff}),
				Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x33, B: 0x88, A: 0xff}),
				Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x2a, G: 0x18, B: 0x44, A: 0xff}),
			},
			TextFace:  face,
			TextColor: &widget.ButtonTextColor{Idle: color.White},
		},
	}
}

func (o *OverlayUI) button(theme *widget.Theme, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, &o.face, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 36)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (o *OverlayUI) buildPanel(theme *widget.Theme) *widget.Container {
	o.title = widget.NewText(widget.TextOpts.Text("", &o.face, titleColor))
	o.body = widget.NewText(widget.TextOpts.Text("", &o.face, bodyColor))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	o.nextBtn = o.button(theme, "Next", func() { o.pending.Next = true })
	buttons.AddChild(o.nextBtn)
	buttons.AddChild(o.button(theme, "Copy", func() { o.pending.Copy = true }))
	buttons.AddChild(o.button(theme, "Close", func() { o.pending.Close = true }))

	o.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	o.panel.AddChild(o.title)
	o.panel.AddChild(o.body)
	o.panel.AddChild(buttons)
	return o.panel
}

func (o *OverlayUI) buildBanner() *widget.Container {
	o.bannerText = widget.NewText(widget.TextOpts.Text("", &o.face, bodyColor))
	o.banner = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(bannerColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	o.banner.AddChild(o.bannerText)
	return o.banner
}

func (o *OverlayUI) buildStart(theme *widget.Theme) *widget.Container {
	center := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
	o.start = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	o.start.AddChild(widget.NewText(
		widget.TextOpts.Text("Memory Stars", &o.face, titleColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	))
	o.start.AddChild(widget.NewText(
		widget.TextOpts.Text("Click a star to read it. Sound on.", &o.face, bodyColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	))
	begin := o.button(theme, "Begin", func() { o.pending.Start = true })
	begin.GetWidget().LayoutData = center
	o.start.AddChild(begin)
	return o.start
}

func (o *OverlayUI) setVisible(c widget.HasWidget, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
	o.ui.Container.RequestRelayout()
}

func (o *OverlayUI) ShowItem(ev system.ItemEvent) {
	o.title.Label = ev.Title
	o.body.Label = strings.Join(wrapLines(ev.Lines, o.face, bodyWidth), "\n")
	o.setVisible(o.nextBtn, ev.HasNext)
	o.setVisible(o.panel, true)
}

func (o *OverlayUI) HideItem() {
	o.setVisible(o.panel, false)
}

func (o *OverlayUI) ShowMessage(text string) {
	o.showBanner(text, messageFrames)
}

func (o *OverlayUI) Copy(text string) {
	if o.clip != nil && o.clip.Write(text) {
		o.showBanner("Copied", copiedFrames)
	}
}

func (o *OverlayUI) showBanner(text string, frames int) {
	o.bannerText.Label = text
	o.bannerFrames = frames
	o.setVisible(o.banner, true)
}

// TakeActions returns and clears the button presses since the last call.
func (o *OverlayUI) TakeActions() Actions {
	a := o.pending
	o.pending = Actions{}
	return a
}

func (o *OverlayUI) Started() bool {
	return o.started
}

// SetStarted hides the start screen once the scene runs.
func (o *OverlayUI) SetStarted(started bool) {
	if started == o.started {
		return
	}
	o.started = started
	o.setVisible(o.start, !started)
}

func (o *OverlayUI) Update() {
	if o.bannerFrames > 0 {
		o.bannerFrames--
		if o.bannerFrames == 0 {
			o.setVisible(o.banner, false)
		}
	}
	o.ui.Update()
}

func (o *OverlayUI) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}

// wrapLines breaks each line at word boundaries so it fits maxWidth pixels
// in face. Empty lines are kept as paragraph breaks.
func wrapLines(lines []string, face ebtext.Face, maxWidth float64) []string {
	var out []string
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			next := cur + " " + word
			if w, _ := ebtext.Measure(next, face, 0); w > maxWidth {
				out = append(out, cur)
				cur = word
				continue
			}
			cur = next
		}
		out = append(out, cur)
	}
	return out
}
