package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Facing is the horizontal direction an entity looks toward.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// MoveState is the coarse movement state used for animation selection.
type MoveState int

const (
	StateIdle MoveState = iota
	StateWalk
	StateJump
)

func (s MoveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Body is the movable part of any physical entity. Rect is authoritative after
// collision resolution and Pos mirrors its top-left corner.
type Body struct {
	Pos           dmath.Vec2
	Tile          TilePos
	Vel           dmath.Vec2
	Rect          Rect
	Facing        Facing
	State         MoveState
	TouchedGround bool

	Gravity float64
	MaxFall float64

	// Momentum is horizontal velocity left over from a swing release. It is
	// added to the walk velocity and decays every step.
	Momentum float64
	// Ride is the displacement of the platform under the body since the last
	// walk step.
	Ride float64

	TileW, TileH float64
}

// NewBody creates a grounded, right-facing body with its top-left at pos.
func NewBody(pos dmath.Vec2, w, h int, tileW, tileH float64) *Body {
	b := &Body{
		Facing:        FacingRight,
		State:         StateIdle,
		TouchedGround: true,
		TileW:         tileW,
		TileH:         tileH,
		Rect:          Rect{W: w, H: h},
	}
	b.Place(pos)
	return b
}

// Place teleports the body so its top-left sits at pos.
func (b *Body) Place(pos dmath.Vec2) {
	b.Rect.X = Round(pos.X)
	b.Rect.Y = Round(pos.Y)
	b.Pos = pos
	b.Tile = PixelToTile(b.Pos, b.TileW, b.TileH)
}

// Sync copies the box corner back into Pos and refreshes the tile position.
func (b *Body) Sync() {
	b.Pos = dmath.Vec2{X: float64(b.Rect.X), Y: float64(b.Rect.Y)}
	b.Tile = PixelToTile(b.Pos, b.TileW, b.TileH)
}

// Bounds limits horizontal walking. A zero value imposes no limit.
type Bounds struct {
	MinX, MaxX float64
}

func (w Bounds) allowsRight(x float64) bool { return w.MaxX <= w.MinX || x < w.MaxX }
func (w Bounds) allowsLeft(x float64) bool  { return w.MaxX <= w.MinX || x > w.MinX }

// WalkInput is the held horizontal direction for one frame.
type WalkInput struct {
	Left, Right bool
}

// ApplyWalkInput sets the horizontal velocity straight from input, with no
// acceleration curve. Left is processed after right so it wins when both are
// held. Facing is kept when no direction is held.
func (b *Body) ApplyWalkInput(in WalkInput, speed, dt float64, bounds Bounds) {
	b.Vel.X = 0
	b.State = StateIdle
	if in.Right {
		if bounds.allowsRight(b.Pos.X) {
			b.Vel.X = speed * dt
		}
		b.State = StateWalk
		b.Facing = FacingRight
	}
	if in.Left {
		if bounds.allowsLeft(b.Pos.X) {
			b.Vel.X = -speed * dt
		}
		b.State = StateWalk
		b.Facing = FacingLeft
	}
	b.Vel.X += b.Momentum + b.Ride
	b.Ride = 0
}

// DecayMomentum bleeds carried swing momentum toward zero.
func (b *Body) DecayMomentum(friction float64) {
	b.Momentum = ApplyFriction(b.Momentum, friction)
}

// Jump applies the (negative) impulse when grounded and reports whether it
// fired.
func (b *Body) Jump(impulse float64) bool {
	if !b.TouchedGround {
		return false
	}
	b.Vel.Y = impulse
	b.TouchedGround = false
	return true
}

// SettleState switches to the jump state while airborne.
func (b *Body) SettleState() {
	if !b.TouchedGround {
		b.State = StateJump
	}
}

// ApplyGravity accumulates gravity and caps the fall speed.
func (b *Body) ApplyGravity(dt float64) {
	b.Vel.Y += b.Gravity * dt
	if b.MaxFall > 0 && b.Vel.Y > b.MaxFall {
		b.Vel.Y = b.MaxFall
	}
}

// standsOn reports whether the body rests exactly on top of r.
func (b *Body) standsOn(r Rect) bool {
	return b.Rect.Bottom() == r.Y && b.Rect.X < r.Right() && r.X < b.Rect.Right()
}
