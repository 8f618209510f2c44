package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/riftline/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseActions are the callbacks the pause menu drives.
type PauseActions struct {
	Resume   func()
	MainMenu func()
	// SetVolume receives the new master volume as a fraction.
	SetVolume func(v float64)
	Volume    func() float64
}

// PauseUI holds the ebitenui interface shown while a level is paused
type PauseUI struct {
	UI      *ebitenui.UI
	actions PauseActions

	volumeLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI creates the pause menu
func NewPauseUI(actions PauseActions) *PauseUI {
	p := &PauseUI{actions: actions}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	p.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (p *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &p.titleFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	))
	panel.AddChild(p.button("Resume", 120, func() {
		if p.actions.Resume != nil {
			p.actions.Resume()
		}
	}))
	panel.AddChild(p.buildVolumeRow())
	panel.AddChild(p.button("Main menu", 120, func() {
		if p.actions.MainMenu != nil {
			p.actions.MainMenu()
		}
	}))

	rootContainer.AddChild(panel)
	p.UI = &ebitenui.UI{Container: rootContainer}
}

func (p *PauseUI) buildVolumeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	row.AddChild(p.button("-", 20, func() { p.stepVolume(-cfg.Pause.VolumeStep) }))
	p.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(p.volumeText(), &p.normalFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	)
	row.AddChild(p.volumeLabel)
	row.AddChild(p.button("+", 20, func() { p.stepVolume(cfg.Pause.VolumeStep) }))
	return row
}

func (p *PauseUI) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 20),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &p.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Pause.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Pause.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.Pause.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Pause.ButtonPress),
	}
}

// stepVolume moves the volume by step, snapped to whole steps.
func (p *PauseUI) stepVolume(step float64) {
	if p.actions.Volume == nil || p.actions.SetVolume == nil {
		return
	}
	p.actions.SetVolume(StepVolume(p.actions.Volume(), step))
	p.volumeLabel.Label = p.volumeText()
}

// StepVolume adds step to v, rounds to the nearest percent and clamps to
// [0, 1].
func StepVolume(v, step float64) float64 {
	v = math.Round((v+step)*100) / 100
	return math.Max(0, math.Min(1, v))
}

func (p *PauseUI) volumeText() string {
	v := 0.0
	if p.actions.Volume != nil {
		v = p.actions.Volume()
	}
	return fmt.Sprintf("Volume %3d%%", int(math.Round(v*100)))
}

func (p *PauseUI) Update() {
	p.UI.Update()
	p.volumeLabel.Label = p.volumeText()
}

func (p *PauseUI) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
