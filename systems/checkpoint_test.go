package systems

import (
	"strconv"
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCheckpointRecordsRespawn(t *testing.T) {
	e := newTestLevel(t)
	cp := factory.CreateCheckpoint(e, object("checkpoint", 100, 144, 16, 16, prop("id", "2")), nil)
	placePlayer(t, e, 100, 144)

	UpdateCheckpoints(e)

	lvl := GetLevel(e)
	assert.True(t, components.Checkpoint.Get(cp).Reached)
	assert.Equal(t, 2, lvl.Record.LatestCheckpointID)
	assert.Equal(t, dmath.Vec2{X: 108, Y: 160}, lvl.Record.LatestCheckpoint)
	assert.Equal(t, lvl.Dimension, lvl.Record.LatestDimension)
	assert.Equal(t, 1, testStore(e).Saves)
	assert.Equal(t, 1, countNotices(e, "Checkpoint reached!"))

	UpdateCheckpoints(e)
	assert.Equal(t, 1, countNotices(e, "Checkpoint reached!"), "a checkpoint is announced once")
}

func TestCheckpointOrdering(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		latest int
		want   bool
	}{
		{"later", 4, 3, true},
		{"earlier", 2, 3, false},
		{"same", 3, 3, false},
		{"zero always counts", 0, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestLevel(t)
			GetLevel(e).Record.LatestCheckpointID = tt.latest
			cp := factory.CreateCheckpoint(e, object("checkpoint", 100, 144, 16, 16, prop("id", strconv.Itoa(tt.id))), nil)
			placePlayer(t, e, 100, 144)

			UpdateCheckpoints(e)
			assert.Equal(t, tt.want, components.Checkpoint.Get(cp).Reached)
		})
	}
}

func TestCheckpointUnlocksDimension(t *testing.T) {
	e := newTestLevel(t)
	factory.CreateCheckpoint(e, object("checkpoint", 100, 144, 16, 16,
		prop("id", "1"), prop("unlock_dimension", "true")), nil)
	placePlayer(t, e, 100, 144)

	UpdateCheckpoints(e)

	lvl := GetLevel(e)
	assert.Equal(t, 1, lvl.Record.NumExtraDimsUnlocked)
	assert.Contains(t, lvl.Unlocked, "alien")
	assert.Equal(t, 1, countNotices(e, "New dimension available!"))
}

func TestFinalCheckpointEndsLevel(t *testing.T) {
	e := newTestLevel(t)
	id := strconv.Itoa(cfg.Level.EndCheckpointID)
	factory.CreateCheckpoint(e, object("checkpoint", 100, 144, 16, 16, prop("id", id)), nil)
	placePlayer(t, e, 100, 144)

	UpdateCheckpoints(e)

	lvl := GetLevel(e)
	require.True(t, lvl.Ending)
	assert.Equal(t, cfg.StateNone, lvl.NextState, "the state changes only once the fade is dark")
	assert.Equal(t, 1, countNotices(e, "You made it!!!"))

	fade := GetTransition(e)
	for i := 0; i < 1000 && lvl.NextState == cfg.StateNone; i++ {
		UpdateTransition(e)
	}
	assert.True(t, fade.Event)
	assert.Equal(t, cfg.StateEnding, lvl.NextState)
}
