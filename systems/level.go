package systems

import (
	"log"
	"time"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the level singleton, or nil outside a level scene.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetFrame returns the clock of the current frame.
func GetFrame(e *ecs.ECS) components.FrameData {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		return components.FrameData{}
	}
	return *components.Frame.Get(entry)
}

// AdvanceFrame records this tick's scaled delta and moves the clock on.
func AdvanceFrame(e *ecs.ECS, dt float64, now time.Duration) {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		return
	}
	f := components.Frame.Get(entry)
	f.DT = dt
	f.Now = now
}

// CurrentDimension returns the settings of the dimension being played.
func CurrentDimension(e *ecs.ECS) cfg.Dimension {
	lvl := GetLevel(e)
	if lvl == nil {
		return cfg.Dimensions().Lookup("")
	}
	return cfg.Dimensions().Lookup(lvl.Dimension)
}

// ApplyDimension configures the player and every enemy for the current
// dimension.
func ApplyDimension(e *ecs.ECS) {
	lvl := GetLevel(e)
	if lvl == nil {
		return
	}
	set := cfg.Dimensions()
	lvl.Settings = set
	lvl.Unlocked = set.Unlocked(lvl.Record.NumExtraDimsUnlocked)
	dim := set.Lookup(lvl.Dimension)
	lvl.Dimension = dim.Name

	if p, ok := playerEntry(e); ok {
		applyPlayerSettings(p, dim)
	}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		applyEnemySettings(entry, dim)
	})
}

func applyPlayerSettings(entry *donburi.Entry, dim cfg.Dimension) {
	player := components.Player.Get(entry)
	body := components.Body.Get(entry)

	player.Speed = dim.PlayerSpeed
	player.Jump = dim.PlayerJump
	body.Gravity = dim.Gravity
	for _, c := range []*gamemath.GrappleConfig{&player.Pull.Config, &player.Swing.Config} {
		c.Range = dim.GrappleRange
		c.Speed = dim.GrappleSpeed
	}
	player.SetMode(dim.GrappleMode)
}

func applyEnemySettings(entry *donburi.Entry, dim cfg.Dimension) {
	enemy := components.Enemy.Get(entry)
	enemy.Patrol.Speed = enemy.BaseSpeed * dim.EnemySpeed
	components.Body.Get(entry).Gravity = dim.Gravity
}

// ReloadDimensions re-applies settings after the dimension file changed on
// disk.
func ReloadDimensions(e *ecs.ECS) {
	lvl := GetLevel(e)
	if lvl == nil || lvl.Settings == cfg.Dimensions() {
		return
	}
	log.Printf("Reloaded dimension settings")
	ApplyDimension(e)
}

// SwitchDimension moves the level to another dimension. The first visit is
// announced behind a fade.
func SwitchDimension(e *ecs.ECS, name string) {
	lvl := GetLevel(e)
	if lvl == nil || name == lvl.Dimension {
		return
	}
	dim, ok := cfg.Dimensions().Get(name)
	if !ok {
		log.Printf("Warning: unknown dimension %q", name)
		return
	}
	log.Printf("Changed dimension to: %s", name)

	lvl.Dimension = name
	lvl.Record.LatestDimension = name
	ApplyDimension(e)
	PlaySFX(e, cfg.SoundPortal)

	msg := "Switched to: " + dim.Display
	if lvl.Visit(name) {
		GetTransition(e).FadeOutIn(func() { SpawnNotice(e, msg) })
		return
	}
	SpawnNotice(e, msg)
}

// UnlockNextDimension makes the next locked dimension reachable through
// portals. It reports false once every dimension is open.
func UnlockNextDimension(e *ecs.ECS) bool {
	lvl := GetLevel(e)
	if lvl == nil {
		return false
	}
	set := cfg.Dimensions()
	if lvl.Record.NumExtraDimsUnlocked >= set.Extras() {
		return false
	}
	lvl.Record.NumExtraDimsUnlocked++
	lvl.Unlocked = set.Unlocked(lvl.Record.NumExtraDimsUnlocked)
	return true
}

// EndLevel starts the fade out toward next. Later calls are ignored until
// the scene is replaced.
func EndLevel(e *ecs.ECS, next cfg.StateID, info map[string]any) {
	lvl := GetLevel(e)
	if lvl == nil || lvl.Ending {
		return
	}
	log.Printf("Level ending, next state: %s", next)
	lvl.End(next, info)
	FadeOutMusic(e)
}
