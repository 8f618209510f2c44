package systems

import (
	"testing"
	"time"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems/factory"
	"github.com/automoto/riftline/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestStepBulletRetiresPastRange(t *testing.T) {
	b := &components.BulletData{Step: dmath.Vec2{X: 4}, MaxDist: 10, Alive: true}

	stepBullet(b, 1)
	stepBullet(b, 1)
	assert.True(t, b.Alive)
	assert.Equal(t, 8.0, b.Pos.X)

	stepBullet(b, 1)
	assert.False(t, b.Alive)
}

func TestShooterFiresOnCooldown(t *testing.T) {
	e := newTestLevel(t)
	factory.CreateShooter(e, object("shooter", 300, 100, 0, 0,
		prop("angle", "90"), prop("cooldown", "1")), nil)

	UpdateShooters(e)
	AdvanceFrame(e, 1, 500*time.Millisecond)
	UpdateShooters(e)
	assert.Zero(t, count(e, tags.Bullet))

	AdvanceFrame(e, 1, time.Second)
	UpdateShooters(e)
	require.Equal(t, 1, count(e, tags.Bullet))

	var b *components.BulletData
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) { b = components.Bullet.Get(entry) })
	assert.InDelta(t, 0, b.Step.X, 1e-9)
	assert.InDelta(t, -cfg.Shooter.BulletSpeed, b.Pos.Y-108, 1e-9, "angle 90 fires straight up")

	AdvanceFrame(e, 1, 1500*time.Millisecond)
	UpdateShooters(e)
	assert.Equal(t, 1, count(e, tags.Bullet))

	AdvanceFrame(e, 1, 2*time.Second)
	UpdateShooters(e)
	assert.Equal(t, 2, count(e, tags.Bullet))
}

func TestBulletDamagesPlayer(t *testing.T) {
	e := newTestLevel(t)
	factory.CreateShooter(e, object("shooter", 100, 140, 0, 0,
		prop("angle", "0"), prop("cooldown", "0.5"), prop("damage", "7")), nil)
	p := placePlayer(t, e, 120, 144)
	AdvanceFrame(e, 1, time.Second)

	for i := 0; i < 10 && !p.HasComponent(components.DamageEvent); i++ {
		UpdateShooters(e)
	}
	require.True(t, p.HasComponent(components.DamageEvent))
	assert.Equal(t, 7, components.DamageEvent.Get(p).Amount)
	assert.Zero(t, count(e, tags.Bullet))

	UpdateDamage(e)
	assert.Equal(t, cfg.Player.MaxHP-7, components.Health.Get(p).Current)
}

func TestAirborneStompDestroysShooter(t *testing.T) {
	e := newTestLevel(t)
	factory.CreateShooter(e, object("shooter", 100, 144, 0, 0, prop("cooldown", "100")), nil)
	p := placePlayer(t, e, 102, 140)

	components.Body.Get(p).TouchedGround = true
	UpdateShooters(e)
	assert.Equal(t, 1, count(e, tags.Shooter), "a grounded player does not break turrets")

	components.Body.Get(p).TouchedGround = false
	UpdateShooters(e)
	assert.Zero(t, count(e, tags.Shooter))
}
