package scenes

import (
	"os"
	"sync"

	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	session *Session
	ecs     *ecs.ECS
	once    sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(session *Session) *MenuScene {
	return &MenuScene{session: session}
}

func (ms *MenuScene) Update(dt float64) {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if systems.GetOrCreateMenu(ms.ecs).Quit {
		ms.session.Flush()
		os.Exit(0)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) NextState() cfg.StateID {
	if ms.ecs == nil {
		return cfg.StateNone
	}
	return systems.GetOrCreateMenu(ms.ecs).NextState
}

func (ms *MenuScene) SwitchInfo() map[string]any { return nil }

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	systems.CreateMenu(ms.ecs, ms.session.Record, ms.session.Store)

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateMenu)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.SetVolume(ms.session.Record.Volume() * 100)
}
