package components

import "github.com/yohamta/donburi"

type PortalData struct {
	End         bool // end_portal finishes the game instead of switching
	Interacting bool
}

var Portal = donburi.NewComponentType[PortalData]()
