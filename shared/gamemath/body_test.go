package gamemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyWalkInput(t *testing.T) {
	tests := []struct {
		name   string
		in     WalkInput
		wantVX float64
		facing Facing
		state  MoveState
	}{
		{"idle keeps facing", WalkInput{}, 0, FacingRight, StateIdle},
		{"right", WalkInput{Right: true}, 4, FacingRight, StateWalk},
		{"left", WalkInput{Left: true}, -4, FacingLeft, StateWalk},
		{"left wins over right", WalkInput{Left: true, Right: true}, -4, FacingLeft, StateWalk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody(100, 0, 10, 16)
			b.ApplyWalkInput(tt.in, 2, 2, Bounds{})
			assert.Equal(t, tt.wantVX, b.Vel.X)
			assert.Equal(t, tt.facing, b.Facing)
			assert.Equal(t, tt.state, b.State)
		})
	}
}

func TestApplyWalkInputBounds(t *testing.T) {
	bounds := Bounds{MinX: 0, MaxX: 2544}

	b := newTestBody(0, 0, 10, 16)
	b.ApplyWalkInput(WalkInput{Left: true}, 2, 1, bounds)
	assert.Zero(t, b.Vel.X)
	assert.Equal(t, FacingLeft, b.Facing, "facing still turns at the edge")

	b.Pos.X = 2544
	b.ApplyWalkInput(WalkInput{Right: true}, 2, 1, bounds)
	assert.Zero(t, b.Vel.X)
}

func TestApplyWalkInputCarriesMomentum(t *testing.T) {
	b := newTestBody(100, 0, 10, 16)
	b.Momentum = 3
	b.ApplyWalkInput(WalkInput{Right: true}, 2, 1, Bounds{})
	assert.Equal(t, 5.0, b.Vel.X)

	b.DecayMomentum(1)
	assert.Equal(t, 2.0, b.Momentum)
	b.DecayMomentum(5)
	assert.Zero(t, b.Momentum)
}

func TestJumpRequiresGround(t *testing.T) {
	b := newTestBody(0, 0, 10, 16)

	assert.True(t, b.Jump(-8))
	assert.Equal(t, -8.0, b.Vel.Y)
	assert.False(t, b.TouchedGround)

	b.Vel.Y = -3
	assert.False(t, b.Jump(-8), "no jump while airborne")
	assert.Equal(t, -3.0, b.Vel.Y)

	b.SettleState()
	assert.Equal(t, StateJump, b.State)
}

func TestGravityIsMonotonicAndCapped(t *testing.T) {
	b := newTestBody(0, 0, 10, 16)
	b.Vel.Y = -8

	prev := b.Vel.Y
	for i := 0; i < 200; i++ {
		b.ApplyGravity(1.3)
		assert.GreaterOrEqual(t, b.Vel.Y, prev)
		assert.LessOrEqual(t, b.Vel.Y, 17.0)
		prev = b.Vel.Y
	}
	assert.Equal(t, 17.0, b.Vel.Y)
}

func TestScaleDelta(t *testing.T) {
	assert.Equal(t, 10.0, ScaleDelta(5*time.Second, 100, 10))
	assert.InDelta(t, 1.6, ScaleDelta(16*time.Millisecond, 100, 10), 1e-9)
	assert.Zero(t, ScaleDelta(-time.Second, 100, 10))
}

func TestPatrolTurnDebounce(t *testing.T) {
	p := NewPatrol(TilePos{10, 0}, TilePos{2, 0}, 2, 16, 16, 500*time.Millisecond)
	assert.Equal(t, 32.0, p.MinX)
	assert.Equal(t, 160.0, p.MaxX)

	b := newTestBody(160, 0, 16, 16)
	assert.True(t, p.Turn(b, time.Second))
	assert.Equal(t, FacingLeft, b.Facing)

	assert.False(t, p.Turn(b, 1200*time.Millisecond), "still cooling down")
	assert.Equal(t, FacingLeft, b.Facing)

	assert.True(t, p.Turn(b, 1600*time.Millisecond))
	assert.Equal(t, FacingRight, b.Facing)

	b.Pos.X = 100
	assert.False(t, p.Turn(b, 5*time.Second), "inside the wander range")

	p.Drive(b, 1.5)
	assert.Equal(t, 3.0, b.Vel.X)
}
