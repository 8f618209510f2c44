package gamemath

// MoveAndCollide moves the body by its rounded velocity and resolves overlaps
// against colliders, the X axis fully before the Y axis. Horizontal velocity
// survives a wall hit; vertical velocity is zeroed on landing or bonking.
func MoveAndCollide(b *Body, colliders []Rect) {
	b.moveX(colliders)
	b.moveY(colliders)
	b.Sync()
}

// MoveAndPush is MoveAndCollide for patrol entities. After each axis step an
// overlapping other body is shoved out of the mover's way, and a body standing
// on the mover is handed the mover's horizontal displacement as a ride offset.
func MoveAndPush(mover *Body, colliders []Rect, other *Body) {
	riding := other != nil && other.standsOn(mover.Rect)

	startX := mover.Rect.X
	mover.moveX(colliders)
	if other != nil {
		if riding {
			other.Ride += float64(mover.Rect.X - startX)
		}
		if other.Rect.Overlaps(mover.Rect) {
			if mover.Vel.X > 0 {
				other.Rect.X = mover.Rect.Right()
			} else if mover.Vel.X < 0 {
				other.Rect.X = mover.Rect.X - other.Rect.W
			}
			other.Sync()
		}
	}

	mover.moveY(colliders)
	if other != nil && other.Rect.Overlaps(mover.Rect) {
		if mover.Vel.Y > 0 {
			other.Vel.Y = 0
			other.Rect.Y = mover.Rect.Bottom()
		} else if mover.Vel.Y < 0 {
			other.Vel.Y = 0
			other.TouchedGround = true
			other.Rect.Y = mover.Rect.Y - other.Rect.H
		}
		other.Sync()
	}
	mover.Sync()
}

// moveX and moveY clamp to the nearest face along the motion among every
// collider the moved box overlaps, so the result does not depend on collider
// order.
func (b *Body) moveX(colliders []Rect) {
	b.Rect.X += Round(b.Vel.X)
	if b.Vel.X == 0 {
		return
	}
	x, hit := b.Rect.X, false
	for _, c := range colliders {
		if !c.Overlaps(b.Rect) {
			continue
		}
		if b.Vel.X > 0 && (!hit || c.X-b.Rect.W < x) {
			x = c.X - b.Rect.W
		} else if b.Vel.X < 0 && (!hit || c.Right() > x) {
			x = c.Right()
		}
		hit = true
	}
	b.Rect.X = x
}

func (b *Body) moveY(colliders []Rect) {
	dy := Round(b.Vel.Y)
	if dy > 0 {
		b.TouchedGround = false
	}
	b.Rect.Y += dy
	if b.Vel.Y == 0 {
		return
	}
	y, hit := b.Rect.Y, false
	for _, c := range colliders {
		if !c.Overlaps(b.Rect) {
			continue
		}
		if b.Vel.Y > 0 && (!hit || c.Y-b.Rect.H < y) {
			y = c.Y - b.Rect.H
		} else if b.Vel.Y < 0 && (!hit || c.Bottom() > y) {
			y = c.Bottom()
		}
		hit = true
	}
	if !hit {
		return
	}
	if b.Vel.Y > 0 {
		b.TouchedGround = true
	}
	b.Vel.Y = 0
	b.Rect.Y = y
}
