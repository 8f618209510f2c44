package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationUpdate(t *testing.T) {
	tests := []struct {
		name   string
		steps  []float64
		frame  int
		looped bool
	}{
		{"holds below threshold", []float64{4}, 0, false},
		{"advances one frame", []float64{5}, 1, false},
		{"accumulates small steps", []float64{2, 2, 2}, 1, false},
		{"skips frames on a long step", []float64{10}, 2, false},
		{"wraps to the first frame", []float64{20}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimation(4, 5)
			for _, dt := range tt.steps {
				a.Update(dt)
			}
			assert.Equal(t, tt.frame, a.Frame())
			assert.Equal(t, tt.looped, a.Looped)
		})
	}
}

func TestAnimationSingleFrame(t *testing.T) {
	a := NewAnimation(1, 5)
	a.Update(100)
	assert.Equal(t, 0, a.Frame())
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(3, 1)
	a.Update(4)
	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}
