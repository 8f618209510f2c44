package components

import "github.com/yohamta/donburi"

// SoundIconData is the clickable mute toggle in the HUD corner.
type SoundIconData struct {
	On bool
	// Last is the volume restored when sound comes back on.
	Last float64
}

var SoundIcon = donburi.NewComponentType[SoundIconData]()
