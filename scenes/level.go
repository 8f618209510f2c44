package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/riftline/assets"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/stages"
	"github.com/automoto/riftline/systems"
	"github.com/automoto/riftline/systems/factory"
	"github.com/automoto/riftline/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Switch info keys read by the level scene.
const (
	InfoRetry     = "retry"
	InfoCause     = "cause"
	InfoTravelled = "travelled"
)

// LevelScene plays the level.
type LevelScene struct {
	session  *Session
	info     map[string]any
	ecs      *ecs.ECS
	pipeline *stages.Pipeline
	now      time.Duration
	once     sync.Once
}

// NewLevelScene creates the level scene. info is the switch info of the
// scene it replaces and may be nil.
func NewLevelScene(session *Session, info map[string]any) *LevelScene {
	return &LevelScene{session: session, info: info}
}

func (ls *LevelScene) Update(dt float64) {
	ls.once.Do(ls.configure)

	systems.UpdateInput(ls.ecs)
	ls.now += time.Duration(dt * float64(10*time.Millisecond))
	systems.AdvanceFrame(ls.ecs, dt, ls.now)
	systems.ReloadDimensions(ls.ecs)
	systems.UpdateAudio(ls.ecs)
	ls.pipeline.Update(ls.ecs)

	if ls.NextState() != cfg.StateNone {
		systems.SaveProgress(ls.ecs)
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	if ls.ecs == nil {
		return
	}
	ls.pipeline.Draw(ls.ecs, screen)
}

func (ls *LevelScene) NextState() cfg.StateID {
	lvl := ls.level()
	if lvl == nil {
		return cfg.StateNone
	}
	return lvl.NextState
}

// SwitchInfo is the level's switch info plus the dimensions travelled so
// far, so a retry does not replay first-visit fades.
func (ls *LevelScene) SwitchInfo() map[string]any {
	info := map[string]any{}
	lvl := ls.level()
	if lvl == nil {
		return info
	}
	for k, v := range lvl.SwitchInfo {
		info[k] = v
	}
	info[InfoTravelled] = lvl.Travelled
	return info
}

func (ls *LevelScene) level() *components.LevelData {
	if ls.ecs == nil {
		return nil
	}
	return systems.GetLevel(ls.ecs)
}

func (ls *LevelScene) configure() {
	record := ls.session.Record

	levelMap, levelImage, err := assets.LoadLevel(cfg.Level.MapPath)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ls.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(ls.ecs, factory.LevelSetup{
		Map:     levelMap,
		Image:   levelImage,
		Sprites: assets.Images(cfg.StateLevel),
		Record:  record,
		Store:   ls.session.Store,
	})

	lvl := systems.GetLevel(ls.ecs)
	if travelled, ok := ls.info[InfoTravelled].(map[string]bool); ok {
		for name := range travelled {
			lvl.Travelled[name] = true
		}
	}
	if retry, _ := ls.info[InfoRetry].(bool); retry {
		log.Printf("Retrying from checkpoint %d after %v", record.LatestCheckpointID, ls.info[InfoCause])
	}

	systems.ApplyDimension(ls.ecs)
	systems.SnapCamera(ls.ecs)

	systems.GetOrCreatePause(ls.ecs).Menu = ui.NewPauseUI(ui.PauseActions{
		Resume: func() { systems.SetPaused(ls.ecs, false) },
		MainMenu: func() {
			systems.EndLevel(ls.ecs, cfg.StateMainMenu, nil)
		},
		SetVolume: func(v float64) {
			systems.SetVolume(v * 100)
			systems.SaveProgress(ls.ecs)
		},
		Volume: systems.Volume,
	})

	systems.SetVolume(record.Volume() * 100)
	systems.PlayMusic(ls.ecs, cfg.Sound.LevelMusic)

	if record.FirstTime {
		record.FirstTime = false
		ls.session.Flush()
	}

	// Keys still held from the previous scene must not count as presses.
	systems.UpdateInput(ls.ecs)

	ls.pipeline = levelPipeline()
}

// levelPipeline lists the level's stages in update and draw order. Only the
// pause stage holds the stages before it.
func levelPipeline() *stages.Pipeline {
	return stages.NewPipeline(
		stages.Func{Label: "background", UpdateFn: systems.UpdateBackground, DrawFn: systems.DrawBackground},
		stages.Func{Label: "checkpoints-draw", DrawFn: systems.DrawCheckpoints},
		stages.Func{Label: "portals-draw", DrawFn: systems.DrawPortals},
		stages.Func{Label: "notes-draw", DrawFn: systems.DrawNotes},
		stages.Func{Label: "enemies-draw", DrawFn: systems.DrawEnemies},
		stages.Func{Label: "shooters", UpdateFn: systems.UpdateShooters, DrawFn: systems.DrawShooters},
		stages.Func{Label: "tiles", DrawFn: systems.DrawTiles},
		stages.Func{Label: "player", UpdateFn: systems.UpdatePlayer, DrawFn: systems.DrawPlayer},
		stages.Func{Label: "items", UpdateFn: systems.UpdateItems, DrawFn: systems.DrawItems},
		stages.Func{Label: "special-tiles", UpdateFn: systems.UpdateSpecialTiles, DrawFn: systems.DrawSpikes},
		stages.Func{Label: "enemies", UpdateFn: systems.UpdateEnemies},
		stages.Func{Label: "spikes", UpdateFn: systems.UpdateSpikes},
		stages.Func{Label: "checkpoints", UpdateFn: systems.UpdateCheckpoints},
		stages.Func{Label: "notes", UpdateFn: systems.UpdateNotes},
		stages.Func{Label: "portals", UpdateFn: systems.UpdatePortals},
		stages.Func{Label: "camera", UpdateFn: systems.UpdateCamera},
		stages.Func{
			Label:    "ui",
			UpdateFn: stages.Updates(systems.UpdateDamage, systems.UpdateHealthBar, systems.UpdateParticles, systems.UpdateEffects),
			DrawFn:   stages.Draws(systems.DrawTextParticles, systems.DrawHUD),
		},
		stages.Func{Label: "sound-icon", UpdateFn: systems.UpdateSoundIcon, DrawFn: systems.DrawSoundIcon},
		stages.Func{Label: "explosions", DrawFn: systems.DrawExplosions},
		stages.Func{Label: "debug", UpdateFn: systems.UpdateDebug, DrawFn: systems.DrawDebug},
		stages.GateFunc{
			Func:   stages.Func{Label: "pause", UpdateFn: systems.UpdatePause, DrawFn: systems.DrawPause},
			HoldFn: systems.IsPaused,
		},
		stages.Func{Label: "transition", UpdateFn: systems.UpdateTransition, DrawFn: systems.DrawTransition},
	)
}
