package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landPlayer(t *testing.T, frames int, update func()) {
	t.Helper()
	for i := 0; i < frames; i++ {
		update()
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	e := newTestLevel(t)
	p := testPlayer(t, e)
	landPlayer(t, 100, func() { UpdatePlayer(e) })

	body := components.Body.Get(p)
	assert.Equal(t, testFloorRow*testTile, body.Rect.Bottom())
	assert.True(t, body.TouchedGround)
	assert.Less(t, body.Vel.Y, 1.0)
	assert.Equal(t, float64(body.Rect.Y), components.Object.Get(p).Object.Y)
}

func TestPlayerWalksAndJumps(t *testing.T) {
	e := newTestLevel(t)
	p := testPlayer(t, e)
	landPlayer(t, 100, func() { UpdatePlayer(e) })
	body := components.Body.Get(p)
	startX := body.Rect.X

	GetOrCreateInput(e).Current[cfg.ActionMoveRight] = true
	landPlayer(t, 10, func() { UpdatePlayer(e) })
	assert.Greater(t, body.Rect.X, startX)
	GetOrCreateInput(e).Current[cfg.ActionMoveRight] = false

	before := countParticles(e)
	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	assert.Less(t, body.Rect.Bottom(), testFloorRow*testTile)
	assert.False(t, body.TouchedGround)
	assert.Less(t, body.Vel.Y, 0.0)
	assert.Equal(t, before+cfg.Explosions[cfg.ExplosionSmoke].Count, countParticles(e))
}

func TestPlayerFallsToDeath(t *testing.T) {
	e := newTestLevel(t)
	GetLevel(e).Map.Tiles = leveldata.Grid{}

	for i := 0; i < 1000 && !IsDead(e); i++ {
		UpdatePlayer(e)
	}
	require.True(t, IsDead(e))
	assert.Equal(t, components.DeathFall, deathCause(testPlayer(t, e)))
}

func TestToggleGrappleMode(t *testing.T) {
	e := newTestLevel(t)
	player := components.Player.Get(testPlayer(t, e))
	require.Equal(t, cfg.GrapplePull, player.Mode)

	press(e, cfg.ActionToggleGrappleMode)
	UpdatePlayer(e)
	assert.Equal(t, cfg.GrappleSwing, player.Mode)
	assert.Equal(t, 1, countNotices(e, "Grapple mode: swing"))
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	e := newTestLevel(t)
	p := testPlayer(t, e)
	Kill(e, p, components.DeathSpike)
	before := components.Body.Get(p).Pos

	UpdatePlayer(e)
	assert.Equal(t, before, components.Body.Get(p).Pos)
}
