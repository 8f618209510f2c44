package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/riftline/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadMini(t *testing.T) *Level {
	t.Helper()
	level, err := Load(os.DirFS("testdata"), "mini.tmx")
	require.NoError(t, err)
	return level
}

func TestLoadTiles(t *testing.T) {
	level := loadMini(t)

	assert.Equal(t, 64, level.Width)
	assert.Equal(t, 48, level.Height)
	assert.Equal(t, 16, level.TileW)

	require.Len(t, level.Tiles, 3)
	floor, ok := level.Tiles[gamemath.TilePos{X: 1, Y: 2}]
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 16, Y: 32, W: 16, H: 16}, floor.Rect)

	_, ok = level.Tiles[gamemath.TilePos{X: 3, Y: 2}]
	assert.False(t, ok, "decorative tiles do not collide")

	require.Len(t, level.SpecialTiles, 1)
	spike := level.SpecialTiles[gamemath.TilePos{X: 2, Y: 1}]
	assert.Equal(t, SpecialSpike, spike.Special)
}

func TestGridRects(t *testing.T) {
	level := loadMini(t)

	assert.Len(t, level.Tiles.Rects(gamemath.TilePos{X: 1, Y: 2}, 1), 3)
	assert.Len(t, level.Tiles.Rects(gamemath.TilePos{X: 0, Y: 2}, 0), 1)
	assert.Empty(t, level.Tiles.Rects(gamemath.TilePos{X: 10, Y: 10}, 2))
}

func TestLoadObjectLayers(t *testing.T) {
	level := loadMini(t)

	assert.Equal(t, []string{"checkpoints", "enemies", "notes"}, level.LayerNames())

	checkpoints := level.Layer("checkpoints")
	require.Len(t, checkpoints, 1)
	assert.Equal(t, 3, checkpoints[0].Int("id"))
	assert.True(t, checkpoints[0].Bool("unlock_dimension"))
	assert.Equal(t, gamemath.Rect{X: 16, Y: 16, W: 16, H: 16}, checkpoints[0].Rect())

	enemies := level.Layer("enemies")
	require.Len(t, enemies, 2)
	platform := enemies[0]
	assert.Equal(t, "moving_platform", platform.Name)
	assert.Equal(t, 1.5, platform.Float("speed"))
	a, err := platform.TilePoint("wander_point_a")
	require.NoError(t, err)
	b, err := platform.TilePoint("wander_point_b")
	require.NoError(t, err)
	assert.Equal(t, gamemath.TilePos{X: 1, Y: 0}, a)
	assert.Equal(t, gamemath.TilePos{X: 3, Y: 0}, b)

	wall := enemies[1]
	assert.False(t, wall.Has("speed"))
	_, err = wall.TilePoint("wander_point_a")
	assert.Error(t, err)

	assert.Equal(t, "Hold the mouse to grapple", level.Layer("notes")[0].Text("text"))
}

func TestMissingLayerIsEmpty(t *testing.T) {
	level := loadMini(t)
	assert.Empty(t, level.Layer("barrels"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "missing.tmx")
	assert.Error(t, err)

	_, _, err = LoadAll(os.DirFS("testdata"), "nope")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(os.DirFS("."), "testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"mini"}, names)
	assert.Contains(t, levels, "mini")
}

func TestAddObjects(t *testing.T) {
	var l Level
	assert.Empty(t, l.Layer("ring"))

	l.AddObjects("ring", Object{Name: "ring"})
	l.AddObjects("ring", Object{Name: "ring", X: 16})

	assert.Len(t, l.Layer("ring"), 2)
	assert.Equal(t, []string{"ring"}, l.LayerNames())
}
