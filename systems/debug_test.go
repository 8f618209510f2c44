package systems

import (
	"testing"

	cfg "github.com/automoto/riftline/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdateDebugToggles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.False(t, GetOrCreateDebug(e).Hitboxes)

	tap(e, cfg.ActionToggleDebug, UpdateDebug)
	assert.True(t, GetOrCreateDebug(e).Hitboxes)

	releaseAll(e)
	UpdateDebug(e)
	assert.True(t, GetOrCreateDebug(e).Hitboxes, "releasing the key does not toggle")

	tap(e, cfg.ActionToggleDebug, UpdateDebug)
	assert.False(t, GetOrCreateDebug(e).Hitboxes)
}
