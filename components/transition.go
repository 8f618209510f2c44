package components

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	fadeOpaque = 255
	fadeClear  = 0
)

// FadeData is a full-screen fade. Event is raised while the fade rests at
// the end opposite to where it started: clear for a fade that began dark,
// opaque for one that began clear.
type FadeData struct {
	Alpha  float64
	Speed  float64 // alpha per dt unit
	FadeIn bool
	Event  bool

	initFadeIn bool
	tween      *gween.Tween
	tweenIn    bool
	effects    []*fadeEffect
}

type fadeEffect struct {
	onFinish func()
}

// NewFade creates a fade that starts opaque when fadeIn is set and clear
// otherwise.
func NewFade(fadeIn bool, speed float64) FadeData {
	f := FadeData{FadeIn: fadeIn, initFadeIn: fadeIn, Speed: speed, Alpha: fadeClear}
	if fadeIn {
		f.Alpha = fadeOpaque
	}
	return f
}

// StartedAsFadeIn reports the direction the fade was created with.
func (f *FadeData) StartedAsFadeIn() bool { return f.initFadeIn }

// FadeOutIn darkens the screen, calls onFinish at full darkness and clears
// it again.
func (f *FadeData) FadeOutIn(onFinish func()) {
	f.effects = append(f.effects, &fadeEffect{onFinish: onFinish})
}

// Pending is the number of queued out-then-in effects.
func (f *FadeData) Pending() int { return len(f.effects) }

// Update advances the fade by dt.
func (f *FadeData) Update(dt float64) {
	f.runEffects()

	target := float64(fadeOpaque)
	if f.FadeIn {
		target = fadeClear
	}
	if f.Alpha == target {
		f.Event = f.FadeIn != f.initFadeIn
		return
	}

	if f.Speed <= 0 {
		f.Alpha = target
		return
	}
	if f.tween == nil || f.tweenIn != f.FadeIn {
		duration := math.Abs(target-f.Alpha) / f.Speed
		f.tween = gween.New(float32(f.Alpha), float32(target), float32(duration), ease.Linear)
		f.tweenIn = f.FadeIn
	}
	v, done := f.tween.Update(float32(dt))
	f.Alpha = float64(v)
	if done {
		f.Alpha = target
		f.tween = nil
	}
	f.Event = false
}

func (f *FadeData) runEffects() {
	for _, e := range append([]*fadeEffect(nil), f.effects...) {
		f.FadeIn = false
		if !f.Event {
			continue
		}
		f.FadeIn = true
		if e.onFinish != nil {
			e.onFinish()
		}
		f.removeEffect(e)
	}
}

func (f *FadeData) removeEffect(e *fadeEffect) {
	for i, x := range f.effects {
		if x == e {
			f.effects = append(f.effects[:i], f.effects[i+1:]...)
			return
		}
	}
}

// AlphaByte is Alpha clamped into a color channel.
func (f *FadeData) AlphaByte() uint8 {
	return uint8(math.Max(0, math.Min(fadeOpaque, f.Alpha)))
}

var Transition = donburi.NewComponentType[FadeData]()
