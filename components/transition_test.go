package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFade(f *FadeData, frames int, dt float64) {
	for i := 0; i < frames; i++ {
		f.Update(dt)
	}
}

func TestNewFade(t *testing.T) {
	in := NewFade(true, 4)
	assert.Equal(t, 255.0, in.Alpha)
	assert.True(t, in.StartedAsFadeIn())

	out := NewFade(false, 4)
	assert.Equal(t, 0.0, out.Alpha)
	assert.False(t, out.StartedAsFadeIn())
}

func TestFadeInNeverRaisesEventWhenStartedAsFadeIn(t *testing.T) {
	f := NewFade(true, 4)
	// 255 alpha at 40 per frame takes 7 frames
	runFade(&f, 7, 10)
	assert.Equal(t, 0.0, f.Alpha)
	runFade(&f, 3, 10)
	assert.False(t, f.Event)
}

func TestFadeOutRaisesEventWhenStartedAsFadeIn(t *testing.T) {
	f := NewFade(true, 4)
	runFade(&f, 10, 10)

	f.FadeIn = false
	runFade(&f, 7, 10)
	assert.Equal(t, 255.0, f.Alpha)
	assert.False(t, f.Event, "event fires on the frame after reaching the end")

	f.Update(10)
	assert.True(t, f.Event)
	f.Update(10)
	assert.True(t, f.Event, "event holds while resting dark")
}

func TestFadeInRaisesEventWhenStartedAsFadeOut(t *testing.T) {
	f := NewFade(false, 4)
	runFade(&f, 10, 10)
	assert.Equal(t, 255.0, f.Alpha)
	assert.False(t, f.Event)

	f.FadeIn = true
	runFade(&f, 8, 10)
	assert.Equal(t, 0.0, f.Alpha)
	assert.True(t, f.Event)
}

func TestFadeReversesMidway(t *testing.T) {
	f := NewFade(true, 4)
	runFade(&f, 3, 10)
	require.InDelta(t, 135.0, f.Alpha, 0.01)

	f.FadeIn = false
	f.Update(10)
	assert.InDelta(t, 175.0, f.Alpha, 0.01)
}

func TestFadeOutIn(t *testing.T) {
	f := NewFade(true, 4)
	runFade(&f, 10, 10)

	calls := 0
	f.FadeOutIn(func() { calls++ })
	require.Equal(t, 1, f.Pending())

	runFade(&f, 8, 10)
	assert.Equal(t, 255.0, f.Alpha)
	assert.Equal(t, 0, calls)

	f.Update(10)
	assert.Equal(t, 1, calls, "callback runs at the dark point")
	assert.Equal(t, 0, f.Pending())
	assert.True(t, f.FadeIn)

	runFade(&f, 10, 10)
	assert.Equal(t, 0.0, f.Alpha)
	assert.Equal(t, 1, calls)
}

func TestFadeZeroSpeedSnaps(t *testing.T) {
	f := NewFade(true, 0)
	f.Update(1)
	assert.Equal(t, 0.0, f.Alpha)
}
