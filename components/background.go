package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BgLine is a diagonal stripe sweeping across the screen.
type BgLine struct {
	Start, End dmath.Vec2
}

// BgSquare is a rotating outline drifting upward through the world.
type BgSquare struct {
	Pos   dmath.Vec2
	Size  float64
	Speed float64
	Angle float64
}

type BackgroundData struct {
	Lines   []BgLine
	Squares []BgSquare

	LineTimer   float64
	SquareTimer float64
}

var Background = donburi.NewComponentType[BackgroundData]()
