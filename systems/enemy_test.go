package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/automoto/riftline/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall(x, y float64, speed string) leveldata.Object {
	return object("moving_wall", x, y, 16, 32,
		prop("wander_point_a", "(5,0)"),
		prop("wander_point_b", "(20,0)"),
		prop("speed", speed),
	)
}

func TestCreateEnemyRejectsBadWanderPoint(t *testing.T) {
	e := newTestLevel(t)
	_, err := factory.CreateEnemy(e, object("moving_wall", 0, 0, 16, 16, prop("wander_point_a", "nope")), testTile, testTile, nil)
	assert.ErrorContains(t, err, "wander_point_a")
}

func TestWallPushesPlayer(t *testing.T) {
	e := newTestLevel(t)
	enemy, err := factory.CreateEnemy(e, wall(100, 128, "2"), testTile, testTile, nil)
	require.NoError(t, err)
	ApplyDimension(e)
	p := placePlayer(t, e, 116, 144)

	UpdateEnemies(e)

	wallBody := components.Body.Get(enemy)
	body := components.Body.Get(p)
	assert.Equal(t, 102, wallBody.Rect.X)
	assert.Equal(t, wallBody.Rect.Right(), body.Rect.X)
	assert.Equal(t, float64(body.Rect.X), components.Object.Get(p).Object.X, "trigger box follows the push")
	assert.Equal(t, 160, wallBody.Rect.Bottom(), "the wall rests on the floor")
}

func TestPlatformCarriesRider(t *testing.T) {
	e := newTestLevel(t)
	platform := object("moving_platform", 100, 144, 32, 16,
		prop("wander_point_a", "(5,0)"),
		prop("wander_point_b", "(20,0)"),
		prop("speed", "3"),
	)
	_, err := factory.CreateEnemy(e, platform, testTile, testTile, nil)
	require.NoError(t, err)
	ApplyDimension(e)
	p := placePlayer(t, e, 110, 128)

	UpdateEnemies(e)
	assert.Equal(t, 3.0, components.Body.Get(p).Ride)
}

func TestUngrappleableIsNotSolid(t *testing.T) {
	e := newTestLevel(t)
	for _, name := range []string{"moving_wall", "ungrappleable"} {
		_, err := factory.CreateEnemy(e, object(name, 200, 128, 16, 32,
			prop("wander_point_a", "(5,0)"), prop("wander_point_b", "(20,0)")), testTile, testTile, nil)
		require.NoError(t, err)
	}

	assert.Len(t, solidEnemies(e), 1)
	targets := enemyTargets(e)
	require.Len(t, targets, 2)
	assert.False(t, targets[0].Ungrappleable == targets[1].Ungrappleable)
}

func TestCreateEnemyRejectsUnknownKind(t *testing.T) {
	e := newTestLevel(t)
	_, err := factory.CreateEnemy(e, object("saw_blade", 0, 0, 16, 16,
		prop("wander_point_a", "(5,0)"), prop("wander_point_b", "(20,0)")), testTile, testTile, nil)
	assert.ErrorContains(t, err, `unknown enemy kind "saw_blade"`)
}

func TestUngrappleableStaysPut(t *testing.T) {
	e := newTestLevel(t)
	block, err := factory.CreateEnemy(e, object("ungrappleable", 100, 128, 16, 32,
		prop("wander_point_a", "(5,0)"), prop("wander_point_b", "(20,0)"), prop("speed", "0.8")),
		testTile, testTile, nil)
	require.NoError(t, err)
	ApplyDimension(e)
	p := placePlayer(t, e, 108, 144)

	for i := 0; i < 10; i++ {
		UpdateEnemies(e)
	}

	assert.Equal(t, 100, components.Body.Get(block).Rect.X)
	assert.Equal(t, 128, components.Body.Get(block).Rect.Y)
	assert.Equal(t, 108, components.Body.Get(p).Rect.X, "an overlapping player is not pushed")
	assert.Equal(t, 144, components.Body.Get(p).Rect.Y)
}

func TestUngrappleableNeedsNoWanderPoints(t *testing.T) {
	e := newTestLevel(t)
	_, err := factory.CreateEnemy(e, object("ungrappleable", 100, 128, 16, 16), testTile, testTile, nil)
	assert.NoError(t, err)
}
