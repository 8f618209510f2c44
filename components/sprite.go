package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image    *ebiten.Image
	Alt      *ebiten.Image // shown while the player interacts with the entity
	Rotation float64
	PivotX   float64
	PivotY   float64
	FlipX    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
