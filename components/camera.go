package components

import (
	"github.com/automoto/riftline/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point shown at the centre of the screen.
type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2 // offset added for the current frame only
}

// Offset is the world-to-screen translation.
func (c *CameraData) Offset() math.Vec2 {
	return math.Vec2{
		X: -c.Position.X + float64(config.C.Width)/2 + c.Shake.X,
		Y: -c.Position.Y + float64(config.C.Height)/2 + c.Shake.Y,
	}
}

// Apply maps a world point to the screen.
func (c *CameraData) Apply(p math.Vec2) math.Vec2 {
	o := c.Offset()
	return math.Vec2{X: p.X + o.X, Y: p.Y + o.Y}
}

// ToWorld maps a screen point into the world.
func (c *CameraData) ToWorld(p math.Vec2) math.Vec2 {
	o := c.Offset()
	return math.Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

var Camera = donburi.NewComponentType[CameraData]()
