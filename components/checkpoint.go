package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	ID              int
	UnlockDimension bool
	// Reached is set on the first valid touch so the notice shows once.
	Reached bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
