package scenes

import (
	"sync"

	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EndingScene thanks the player and returns to the main menu.
type EndingScene struct {
	session *Session
	ecs     *ecs.ECS
	once    sync.Once
}

func NewEndingScene(session *Session) *EndingScene {
	return &EndingScene{session: session}
}

func (es *EndingScene) Update(dt float64) {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *EndingScene) Draw(screen *ebiten.Image) {
	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EndingScene) NextState() cfg.StateID {
	if es.ecs == nil {
		return cfg.StateNone
	}
	return systems.GetOrCreateEnding(es.ecs).NextState
}

func (es *EndingScene) SwitchInfo() map[string]any { return nil }

func (es *EndingScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())
	es.ecs.AddSystem(systems.UpdateAudio)
	es.ecs.AddSystem(systems.UpdateInput)
	es.ecs.AddSystem(systems.UpdateEnding)
	es.ecs.AddRenderer(cfg.Default, systems.DrawEnding)
	es.session.Flush()
}
