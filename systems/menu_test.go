package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/save"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func releaseAll(e *ecs.ECS) {
	in := GetOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func tap(e *ecs.ECS, action cfg.ActionID, system ecs.System) {
	releaseAll(e)
	releaseAll(e)
	press(e, action)
	system(e)
}

func TestCreateMenuHidesContinueOnFirstRun(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	menu := CreateMenu(e, save.Default(), &save.MemoryStore{})
	assert.Equal(t, []components.MainMenuOption{components.MainMenuNewGame, components.MainMenuQuit}, menu.VisibleOptions)

	record := save.Default()
	record.FirstTime = false
	menu = CreateMenu(e, record, &save.MemoryStore{})
	assert.Equal(t, components.MainMenuContinue, menu.VisibleOptions[0])
	assert.Len(t, menu.VisibleOptions, 3)
}

func TestUpdateMenuWrapsSelection(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	record := save.Default()
	record.FirstTime = false
	menu := CreateMenu(e, record, &save.MemoryStore{})

	tap(e, cfg.ActionMenuUp, UpdateMenu)
	assert.Equal(t, 2, menu.SelectedIndex)
	tap(e, cfg.ActionMenuDown, UpdateMenu)
	assert.Equal(t, 0, menu.SelectedIndex)
	tap(e, cfg.ActionMenuDown, UpdateMenu)
	assert.Equal(t, 1, menu.SelectedIndex)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 3)
}

func TestUpdateMenuContinueKeepsProgress(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	record := save.Default()
	record.FirstTime = false
	record.LatestCheckpointID = 4
	store := &save.MemoryStore{}
	CreateMenu(e, record, store)

	tap(e, cfg.ActionMenuSelect, UpdateMenu)

	menu := GetOrCreateMenu(e)
	assert.Equal(t, cfg.StateLevel, menu.NextState)
	assert.Equal(t, 4, record.LatestCheckpointID)
	assert.Zero(t, store.Saves)
}

func TestUpdateMenuNewGameResetsRecord(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	record := save.Default()
	record.FirstTime = false
	record.LatestCheckpointID = 4
	record.HasRing = true
	record.LastVolume = 0.8
	store := &save.MemoryStore{}
	CreateMenu(e, record, store)

	tap(e, cfg.ActionMenuDown, UpdateMenu)
	tap(e, cfg.ActionMenuSelect, UpdateMenu)

	menu := GetOrCreateMenu(e)
	require.Equal(t, cfg.StateLevel, menu.NextState)
	assert.Zero(t, record.LatestCheckpointID)
	assert.False(t, record.HasRing)
	assert.True(t, record.FirstTime)
	assert.InDelta(t, 0.8, record.LastVolume, 1e-9)
	assert.Equal(t, 1, store.Saves)
}

func TestUpdateMenuQuit(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		moves  int
	}{
		{"quit option", cfg.ActionMenuSelect, 1},
		{"back", cfg.ActionMenuBack, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			CreateMenu(e, save.Default(), &save.MemoryStore{})
			for i := 0; i < tt.moves; i++ {
				tap(e, cfg.ActionMenuDown, UpdateMenu)
			}
			tap(e, tt.action, UpdateMenu)

			menu := GetOrCreateMenu(e)
			assert.True(t, menu.Quit)
			assert.Equal(t, cfg.StateNone, menu.NextState)
		})
	}
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "CONTINUE", optionLabel(components.MainMenuContinue))
	assert.Equal(t, "QUIT", optionLabel(components.MainMenuQuit))
	assert.Empty(t, optionLabel(components.MainMenuOption(9)))
}

func TestUpdateEndingWaitsBeforeReturning(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	tap(e, cfg.ActionMenuSelect, UpdateEnding)
	assert.Equal(t, cfg.StateNone, GetOrCreateEnding(e).NextState)

	for i := 0; i < endingInputDelay; i++ {
		releaseAll(e)
		UpdateEnding(e)
	}
	tap(e, cfg.ActionMenuSelect, UpdateEnding)
	assert.Equal(t, cfg.StateMainMenu, GetOrCreateEnding(e).NextState)
}
