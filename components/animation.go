package components

import (
	"github.com/automoto/riftline/assets/animations"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData holds the player's walk cycle, one strip per facing.
type AnimationData struct {
	Frames map[gamemath.Facing][]*ebiten.Image
	Walk   *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
