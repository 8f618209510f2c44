package main

import (
	"os"
	"testing"

	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckShippedLevel(t *testing.T) {
	level, err := leveldata.Load(os.DirFS("../../assets/levels"), "riftline.tmx")
	require.NoError(t, err)

	assert.Empty(t, Check(level, cfg.Level.SpawnLayer, cfg.Level.EndCheckpointID))
}

func TestCheckEmptyLevel(t *testing.T) {
	problems := Check(&leveldata.Level{Name: "empty"}, "player", 10)

	assert.Len(t, problems, 3)
	assert.Contains(t, problems, `layer "player" has no player spawn`)
	assert.Contains(t, problems, "no final checkpoint with id 10")
	assert.Contains(t, problems, "map has no solid tiles")
}
