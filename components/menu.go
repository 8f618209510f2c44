package components

import (
	"github.com/automoto/riftline/config"
	"github.com/automoto/riftline/save"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuContinue MainMenuOption = iota
	MainMenuNewGame
	MainMenuQuit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int              // index into VisibleOptions
	VisibleOptions []MainMenuOption // Continue is hidden until a game was started
	Record         *save.Record
	Store          save.Store

	NextState config.StateID
	Quit      bool
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()

// EndingData is the state of the ending screen.
type EndingData struct {
	Frames    int
	NextState config.StateID
}

var Ending = donburi.NewComponentType[EndingData]()
