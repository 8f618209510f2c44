package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// endingInputDelay keeps the key that finished the level from skipping the
// ending screen.
const endingInputDelay = 30

// UpdateEnding returns to the main menu on select or back.
func UpdateEnding(e *ecs.ECS) {
	ending := GetOrCreateEnding(e)
	ending.Frames++
	if ending.Frames < endingInputDelay || ending.NextState != cfg.StateNone {
		return
	}

	input := GetOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionMenuBack).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		ending.NextState = cfg.StateMainMenu
	}
}

// DrawEnding renders the closing lines centred on the screen.
func DrawEnding(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "THE END"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	face := fonts.Regular.Get()
	for i, line := range cfg.Menu.EndingLines {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight
		clr := cfg.Menu.TextColorNormal
		if i == len(cfg.Menu.EndingLines)-1 {
			clr = cfg.Menu.TextColorSelected
		}
		text.Draw(screen, line, face, centerTextX(line, face, width), int(y), clr)
	}
}

// GetOrCreateEnding returns the singleton Ending component, creating if needed
func GetOrCreateEnding(e *ecs.ECS) *components.EndingData {
	ent, ok := components.Ending.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.Ending))
	}
	return components.Ending.Get(ent)
}
