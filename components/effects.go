package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// TextParticleData is floating text that rises, slows and fades out.
type TextParticleData struct {
	Text       string
	Pos        dmath.Vec2 // world space, centre of the text
	Vel        dmath.Vec2
	Color      color.RGBA
	Alpha      float64
	AlphaSpeed float64
	Lifespan   float64 // dt units before the fade starts
	Age        float64
}

var TextParticle = donburi.NewComponentType[TextParticleData]()

// AngularParticleData is a square spark flying along Angle while it
// shrinks.
type AngularParticleData struct {
	Pos       dmath.Vec2
	Angle     float64 // radians
	Speed     float64
	Size      float64
	SizeDecay float64
	Glow      bool
	Color     color.RGBA
}

var AngularParticle = donburi.NewComponentType[AngularParticleData]()
