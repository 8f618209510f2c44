package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/stretchr/testify/assert"
)

func TestPauseDropsGrappleLine(t *testing.T) {
	for _, mode := range []cfg.GrappleMode{cfg.GrapplePull, cfg.GrappleSwing} {
		e := newTestLevel(t)
		player := components.Player.Get(testPlayer(t, e))
		player.Mode = mode
		player.Pull.Attached, player.Pull.Visible = true, true
		player.Swing.Attached, player.Swing.Visible = true, true

		SetPaused(e, true)
		assert.True(t, IsPaused(e))
		assert.False(t, player.Attached(), "mode %v", mode)
		_, _, visible := player.Hook().Line()
		assert.False(t, visible, "mode %v", mode)

		SetPaused(e, false)
		assert.False(t, IsPaused(e))
		assert.False(t, player.Attached(), "mode %v", mode)
	}
}

func TestPausePressTogglesMenu(t *testing.T) {
	e := newTestLevel(t)
	testPlayer(t, e)

	tap(e, cfg.ActionPause, UpdatePause)
	assert.True(t, IsPaused(e))
	tap(e, cfg.ActionPause, UpdatePause)
	assert.False(t, IsPaused(e))
}
