package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/fonts"
	"github.com/automoto/riftline/save"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// CreateMenu spawns the main menu singleton for record. Continue is offered
// only once a game has been started.
func CreateMenu(e *ecs.ECS, record *save.Record, store save.Store) *components.MenuData {
	options := []components.MainMenuOption{components.MainMenuNewGame, components.MainMenuQuit}
	if !record.FirstTime {
		options = append([]components.MainMenuOption{components.MainMenuContinue}, options...)
	}

	menu := GetOrCreateMenu(e)
	*menu = components.MenuData{
		VisibleOptions: options,
		Record:         record,
		Store:          store,
	}
	return menu
}

// UpdateMenu moves the selection with wrap-around and acts on the chosen
// option. Quitting is reported through MenuData.Quit.
func UpdateMenu(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	input := GetOrCreateInput(e)

	numOptions := len(menu.VisibleOptions)
	if numOptions == 0 || menu.NextState != cfg.StateNone || menu.Quit {
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		switch menu.VisibleOptions[menu.SelectedIndex] {
		case components.MainMenuContinue:
			menu.NextState = cfg.StateLevel
		case components.MainMenuNewGame:
			startNewGame(menu)
			menu.NextState = cfg.StateLevel
		case components.MainMenuQuit:
			menu.Quit = true
		}
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		menu.Quit = true
	}
}

// startNewGame wipes progress but keeps the player's volume.
func startNewGame(menu *components.MenuData) {
	if menu.Record == nil {
		return
	}
	volume := menu.Record.LastVolume
	menu.Record.Reset()
	menu.Record.LastVolume = volume
	save.Flush(menu.Store, menu.Record)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, cfg.C.Title, titleFont, centerTextX(cfg.C.Title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := optionLabel(option)
		text.Draw(screen, label, menuFont, centerTextX(label, menuFont, width), int(y), textColor)
	}

	hint := menuHint(GetOrCreateInput(e).LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

func menuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

func optionLabel(option components.MainMenuOption) string {
	if int(option) < 0 || int(option) >= len(cfg.Menu.MenuOptions) {
		return ""
	}
	return cfg.Menu.MenuOptions[option]
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	ent, ok := components.Menu.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(ent)
}
