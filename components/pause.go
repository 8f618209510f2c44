package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PauseMenu is the widget tree shown while paused.
type PauseMenu interface {
	Update()
	Draw(screen *ebiten.Image)
}

// PauseData stores the pause state and its menu
type PauseData struct {
	IsPaused bool
	Menu     PauseMenu
}

var Pause = donburi.NewComponentType[PauseData]()
