package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems/factory"
	"github.com/automoto/riftline/tags"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestRingPickup(t *testing.T) {
	e := newTestLevel(t)
	ring := factory.CreateRing(e, object("ring", 100, 144, 16, 16), nil, false)
	placePlayer(t, e, 100, 144)

	UpdateItems(e)

	lvl := GetLevel(e)
	assert.True(t, lvl.Record.HasRing)
	assert.False(t, components.Ring.Get(ring).OnGround)
	assert.Equal(t, 1, testStore(e).Saves)

	UpdateItems(e)
	assert.Equal(t, 1, countNotices(e, "Grabbed ring"), "a carried ring cannot be grabbed again")
}

func TestRingDropsAtCheckpoint(t *testing.T) {
	e := newTestLevel(t)
	lvl := GetLevel(e)
	lvl.Record.HasRing = true
	lvl.Record.ReachCheckpoint(3, dmath.Vec2{X: 200, Y: 160})
	ring := factory.CreateRing(e, object("ring", 500, 144, 16, 16), nil, true)

	DropRing(e)

	obj := components.Object.Get(ring).Object
	assert.Equal(t, 192.0, obj.X)
	assert.Equal(t, 144.0, obj.Y)
	assert.True(t, components.Ring.Get(ring).OnGround)
	assert.False(t, lvl.Record.HasRing)
}

func TestDropRingWithoutRing(t *testing.T) {
	e := newTestLevel(t)
	DropRing(e)
	assert.Zero(t, countNotices(e, "Ring dropped at last checkpoint!"))
}

func TestSmashBarrelReleasesEgg(t *testing.T) {
	e := newTestLevel(t)
	factory.CreateBarrel(e, object("barrel", 100, 144, 16, 16, prop("easter", "true")), nil)
	placePlayer(t, e, 100, 144)

	UpdateItems(e)
	assert.Equal(t, 1, count(e, tags.Barrel), "barrels only break on smash")

	press(e, cfg.ActionSmash)
	UpdateItems(e)
	UpdateItems(e)

	lvl := GetLevel(e)
	assert.Zero(t, count(e, tags.Barrel))
	assert.Zero(t, count(e, tags.EasterEgg))
	assert.True(t, lvl.Record.HasEasterEgg)
	assert.Equal(t, 1, countNotices(e, "Found an easter egg!"))
}

func TestPlainBarrelHasNoEgg(t *testing.T) {
	e := newTestLevel(t)
	factory.CreateBarrel(e, object("barrel", 100, 144, 16, 16), nil)
	placePlayer(t, e, 100, 144)

	press(e, cfg.ActionSmash)
	UpdateItems(e)

	assert.Zero(t, count(e, tags.Barrel))
	assert.Zero(t, count(e, tags.EasterEgg))
	assert.False(t, GetLevel(e).Record.HasEasterEgg)
}

func TestEggBobsAroundOrigin(t *testing.T) {
	e := newTestLevel(t)
	egg := factory.CreateEasterEgg(e, 400, 100, nil)

	seen := map[bool]bool{}
	for i := 0; i < int(cfg.Egg.BobPeriod)*2; i++ {
		UpdateItems(e)
		data := components.EasterEgg.Get(egg)
		assert.LessOrEqual(t, data.Offset, cfg.Egg.BobAmplitude+1e-6)
		assert.GreaterOrEqual(t, data.Offset, -cfg.Egg.BobAmplitude-1e-6)
		seen[data.Offset > 0] = true
	}
	assert.True(t, seen[true])
	assert.True(t, seen[false])
}
