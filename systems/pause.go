package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause menu and feeds it input while open.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := GetOrCreateInput(ecs)
	if lvl := GetLevel(ecs); lvl != nil && lvl.Ending {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
	}
	if pause.IsPaused && pause.Menu != nil {
		pause.Menu.Update()
	}
}

// SetPaused opens or closes the pause menu. Opening it drops the player's
// grapple line.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	if paused {
		// The release edge is lost while frozen, so the hook cannot stay held.
		if p, ok := playerEntry(ecs); ok {
			components.Player.Get(p).Hook().Reset()
		}
		PauseMusic(ecs)
	} else {
		ResumeMusic(ecs)
	}
}

// IsPaused reports whether the level is frozen behind the pause menu.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	if lvl := GetLevel(ecs); lvl != nil && lvl.Ending {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)
	if pause.Menu != nil {
		pause.Menu.Draw(screen)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}
