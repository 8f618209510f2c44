package components

import (
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Body is the physical box of the player and of patrol entities.
var Body = donburi.NewComponentType[gamemath.Body]()
