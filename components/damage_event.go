package components

import "github.com/yohamta/donburi"

type DamageEventData struct {
	Amount int
	Source string // "bullet", "wall"
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
