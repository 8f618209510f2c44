package gamemath

import "time"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ScaleDelta converts a wall-clock frame delta into simulation units, capped so
// a long stall cannot blow up the physics step.
func ScaleDelta(raw time.Duration, scale, limit float64) float64 {
	dt := raw.Seconds() * scale
	if dt > limit {
		return limit
	}
	if dt < 0 {
		return 0
	}
	return dt
}
