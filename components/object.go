package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's trigger box in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds every trigger box of the level.
var Space = donburi.NewComponentType[resolv.Space]()
