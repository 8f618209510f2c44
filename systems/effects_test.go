package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestStepTextSlowsAndFades(t *testing.T) {
	p := &components.TextParticleData{Vel: dmath.Vec2{Y: -2}, Alpha: 255, AlphaSpeed: 3, Lifespan: 100}

	alive := stepText(p, 1)
	assert.True(t, alive)
	assert.InDelta(t, -2*cfg.Particles.TextVelDamping, p.Vel.Y, 1e-9)
	assert.InDelta(t, -2*cfg.Particles.TextVelDamping, p.Pos.Y, 1e-9)
	assert.Equal(t, 252.0, p.Alpha)
}

func TestStepTextDies(t *testing.T) {
	tests := []struct {
		name string
		p    components.TextParticleData
	}{
		{"lifespan", components.TextParticleData{Alpha: 255, Lifespan: 0, Age: 0}},
		{"alpha", components.TextParticleData{Alpha: 2, AlphaSpeed: 3, Lifespan: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			assert.False(t, stepText(&p, 1))
		})
	}
}

func TestStepAngular(t *testing.T) {
	p := &components.AngularParticleData{Speed: 2, Size: 1, SizeDecay: 0.4}
	assert.True(t, stepAngular(p, 1))
	assert.InDelta(t, 2, p.Pos.X, 1e-9)
	assert.InDelta(t, 0.6, p.Size, 1e-9)

	assert.True(t, stepAngular(p, 1))
	assert.False(t, stepAngular(p, 1))
}

func TestParticlesAreRemoved(t *testing.T) {
	e := newTestLevel(t)
	SpawnText(e, "hi", dmath.Vec2{}, dmath.Vec2{}, 300, 80, cfg.UI.TextColor)
	CreateExplosion(e, cfg.ExplosionSmoke, dmath.Vec2{X: 5, Y: 5})

	assert.Equal(t, 1+cfg.Explosions[cfg.ExplosionSmoke].Count, countParticles(e))
	for i := 0; i < 200; i++ {
		UpdateParticles(e)
	}
	assert.Zero(t, countParticles(e))
}
