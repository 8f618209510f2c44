package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestCameraRoundTrip(t *testing.T) {
	cam := CameraData{Position: math.Vec2{X: 500, Y: 300}}

	centre := cam.Apply(math.Vec2{X: 500, Y: 300})
	assert.Equal(t, math.Vec2{X: 210, Y: 100}, centre)

	world := cam.ToWorld(math.Vec2{X: 10, Y: 20})
	assert.Equal(t, math.Vec2{X: 300, Y: 220}, world)
	assert.Equal(t, math.Vec2{X: 10, Y: 20}, cam.Apply(world))
}

func TestCameraShakeIsScreenOnly(t *testing.T) {
	cam := CameraData{Position: math.Vec2{X: 210, Y: 100}, Shake: math.Vec2{X: 2, Y: -3}}
	assert.Equal(t, math.Vec2{X: 2, Y: -3}, cam.Apply(math.Vec2{}))
	assert.Equal(t, 210.0, cam.Position.X)
}
