package gamemath

import "time"

// Patrol walks a body back and forth between two wander points.
type Patrol struct {
	MinX, MaxX float64
	Speed      float64
	// Cooldown is the minimum time between two turns. It stops a body stuck on
	// a bound from flipping every frame.
	Cooldown time.Duration

	lastTurn time.Duration
}

// NewPatrol builds a patrol from two wander points given in tile space.
func NewPatrol(a, b TilePos, speed, tileW, tileH float64, cooldown time.Duration) Patrol {
	ax := TileToPixel(a, tileW, tileH).X
	bx := TileToPixel(b, tileW, tileH).X
	if ax > bx {
		ax, bx = bx, ax
	}
	return Patrol{MinX: ax, MaxX: bx, Speed: speed, Cooldown: cooldown}
}

// Drive sets the constant patrol velocity for this frame.
func (p *Patrol) Drive(b *Body, dt float64) {
	b.Vel.X = p.Speed * dt * float64(b.Facing)
}

// Turn flips the body when it is outside the wander range and the cooldown
// has elapsed. It reports whether a flip happened.
func (p *Patrol) Turn(b *Body, now time.Duration) bool {
	if p.MinX < b.Pos.X && b.Pos.X < p.MaxX {
		return false
	}
	if now-p.lastTurn <= p.Cooldown {
		return false
	}
	b.Facing = -b.Facing
	p.lastTurn = now
	return true
}
