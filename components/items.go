package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type RingData struct {
	OnGround bool
}

var Ring = donburi.NewComponentType[RingData]()

type BarrelData struct {
	Easter      bool
	Interacting bool
}

var Barrel = donburi.NewComponentType[BarrelData]()

// EasterEggData bobs an egg around its spawn point until picked up.
type EasterEggData struct {
	Origin dmath.Vec2
	Bob    *gween.Sequence
	Offset float64
}

var EasterEgg = donburi.NewComponentType[EasterEggData]()
