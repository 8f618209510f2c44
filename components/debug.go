package components

import "github.com/yohamta/donburi"

// DebugData toggles the hitbox overlay.
type DebugData struct {
	Hitboxes bool
}

var Debug = donburi.NewComponentType[DebugData]()
