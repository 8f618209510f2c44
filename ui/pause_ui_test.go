package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepVolume(t *testing.T) {
	tests := []struct {
		name    string
		v, step float64
		want    float64
	}{
		{"up", 0.5, 0.1, 0.6},
		{"down", 0.5, -0.1, 0.4},
		{"float noise is rounded", 0.1 + 0.2, 0.1, 0.4},
		{"clamped high", 0.95, 0.1, 1},
		{"clamped low", 0.05, -0.1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StepVolume(tt.v, tt.step), 1e-9)
		})
	}
}
