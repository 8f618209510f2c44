package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalSwitchesToNextUnlockedDimension(t *testing.T) {
	e := newTestLevel(t)
	portal := factory.CreatePortal(e, object("portal", 100, 144, 16, 16), nil)
	p := placePlayer(t, e, 100, 144)

	UpdatePortals(e)
	assert.True(t, components.Portal.Get(portal).Interacting)
	assert.Equal(t, "parallel", GetLevel(e).Dimension, "standing in a portal does nothing by itself")

	press(e, cfg.ActionInteract)
	UpdatePortals(e)

	lvl := GetLevel(e)
	want, ok := cfg.Dimensions().Get("volcanic")
	require.True(t, ok)
	assert.Equal(t, "volcanic", lvl.Dimension)
	assert.Equal(t, "volcanic", lvl.Record.LatestDimension)
	assert.Equal(t, want.Gravity, components.Body.Get(p).Gravity)
	assert.Equal(t, want.PlayerSpeed, components.Player.Get(p).Speed)
	assert.Equal(t, 1, GetTransition(e).Pending(), "a first visit is announced behind a fade")
}

func TestRevisitSkipsFade(t *testing.T) {
	e := newTestLevel(t)
	lvl := GetLevel(e)
	lvl.Visit("volcanic")

	SwitchDimension(e, "volcanic")
	assert.Zero(t, GetTransition(e).Pending())
	assert.Equal(t, 1, countNotices(e, "Switched to: Volcanic Dimension"))
}

func TestSwitchToUnknownDimensionIsIgnored(t *testing.T) {
	e := newTestLevel(t)
	SwitchDimension(e, "nowhere")
	assert.Equal(t, "parallel", GetLevel(e).Dimension)
}

func TestEndPortalFinishesGame(t *testing.T) {
	e := newTestLevel(t)
	factory.CreatePortal(e, object("end_portal", 100, 144, 16, 16), nil)
	placePlayer(t, e, 100, 144)

	press(e, cfg.ActionInteract)
	UpdatePortals(e)

	lvl := GetLevel(e)
	assert.True(t, lvl.Ending)
	assert.Equal(t, "parallel", lvl.Dimension)
}

func TestUnlockKeyOpensDimensionsInOrder(t *testing.T) {
	e := newTestLevel(t)
	lvl := GetLevel(e)
	assert.NotContains(t, lvl.Unlocked, "alien")

	press(e, cfg.ActionUnlockDimension)
	UpdatePortals(e)
	assert.Contains(t, lvl.Unlocked, "alien")
	assert.Equal(t, 1, lvl.Record.NumExtraDimsUnlocked)

	for i := 0; i < 5; i++ {
		UnlockNextDimension(e)
	}
	assert.Equal(t, cfg.Dimensions().Extras(), lvl.Record.NumExtraDimsUnlocked)
}
