// Package animations steps looping frame animations on the scaled frame
// clock.
package animations

// Animation cycles through Count frames, holding each for Hold dt units.
type Animation struct {
	Count  int
	Hold   float64
	Looped bool

	elapsed float64
	frame   int
}

// NewAnimation creates an animation over count frames.
func NewAnimation(count int, hold float64) *Animation {
	return &Animation{Count: count, Hold: hold}
}

// Update advances the animation by dt. Several frames may pass in one call
// when dt is large.
func (a *Animation) Update(dt float64) {
	if a.Count <= 1 || a.Hold <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.Hold {
		a.elapsed -= a.Hold
		a.frame++
		if a.frame >= a.Count {
			a.frame = 0
			a.Looped = true
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Looped = false
}
