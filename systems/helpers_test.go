package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/save"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/automoto/riftline/systems/factory"
	"github.com/automoto/riftline/tags"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	testTile     = 16
	testFloorRow = 10
)

// newTestLevel builds a headless level: a 40 tile floor on row 10, a
// fresh record in memory and the player wherever the map spawn fallback puts
// it.
func newTestLevel(t *testing.T) *ecs.ECS {
	t.Helper()
	level := &leveldata.Level{
		Name:         "test",
		Width:        40 * testTile,
		Height:       20 * testTile,
		TileW:        testTile,
		TileH:        testTile,
		Tiles:        floorGrid(40, testFloorRow),
		SpecialTiles: leveldata.Grid{},
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, factory.LevelSetup{
		Map:    level,
		Record: save.Default(),
		Store:  &save.MemoryStore{},
	})
	ApplyDimension(e)
	AdvanceFrame(e, 1, 0)
	return e
}

func floorGrid(width, row int) leveldata.Grid {
	g := leveldata.Grid{}
	for x := 0; x < width; x++ {
		pos := gamemath.TilePos{X: x, Y: row}
		g[pos] = leveldata.Tile{
			Pos:  pos,
			Rect: gamemath.Rect{X: x * testTile, Y: row * testTile, W: testTile, H: testTile},
			ID:   1,
		}
	}
	return g
}

func testPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	p, ok := playerEntry(e)
	if !ok {
		t.Fatal("level has no player")
	}
	return p
}

// placePlayer moves the player's top-left to (x, y) and its trigger box
// with it.
func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	p := testPlayer(t, e)
	body := components.Body.Get(p)
	body.Place(dmath.Vec2{X: x, Y: y})
	syncObject(components.Object.Get(p).Object, body)
	return p
}

func testStore(e *ecs.ECS) *save.MemoryStore {
	return GetLevel(e).Store.(*save.MemoryStore)
}

func object(name string, x, y, w, h float64, props ...*tiled.Property) leveldata.Object {
	return leveldata.Object{Name: name, X: x, Y: y, W: w, H: h, Properties: props}
}

func prop(name, value string) *tiled.Property {
	return &tiled.Property{Name: name, Value: value}
}

func press(e *ecs.ECS, action cfg.ActionID) {
	in := GetOrCreateInput(e)
	in.Previous[action] = false
	in.Current[action] = true
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countParticles(e *ecs.ECS) int {
	return count(e, tags.Particle)
}

func countNotices(e *ecs.ECS, msg string) int {
	n := 0
	components.TextParticle.Each(e.World, func(entry *donburi.Entry) {
		if components.TextParticle.Get(entry).Text == msg {
			n++
		}
	})
	return n
}
