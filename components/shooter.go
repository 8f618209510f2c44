package components

import (
	"time"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ShooterData struct {
	Angle    float64 // degrees, counter-clockwise
	Cooldown time.Duration
	MaxDist  float64
	Damage   int

	LastShot time.Duration
}

var Shooter = donburi.NewComponentType[ShooterData]()

type BulletData struct {
	Pos     dmath.Vec2
	Step    dmath.Vec2 // displacement per dt unit
	Covered float64
	MaxDist float64
	Damage  int
	Alive   bool
}

var Bullet = donburi.NewComponentType[BulletData]()
