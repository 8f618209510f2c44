package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePortals handles dimension travel. Interacting with a portal moves to
// the next unlocked dimension; an end portal finishes the game.
func UpdatePortals(ecs *ecs.ECS) {
	ReloadDimensions(ecs)

	input := GetOrCreateInput(ecs)
	if GetAction(input, cfg.ActionUnlockDimension).JustPressed {
		if UnlockNextDimension(ecs) {
			SpawnNotice(ecs, "New dimension available!")
			SaveProgress(ecs)
		}
	}

	p, ok := playerEntry(ecs)
	interact := GetAction(input, cfg.ActionInteract).JustPressed
	lvl := GetLevel(ecs)

	tags.Portal.Each(ecs.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		portal.Interacting = ok && Overlaps(p, entry)
		if !portal.Interacting || !interact || lvl == nil {
			return
		}
		if portal.End {
			EndLevel(ecs, cfg.StateEnding, nil)
			return
		}
		SwitchDimension(ecs, cfg.Next(lvl.Unlocked, lvl.Dimension))
	})
}

func DrawPortals(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	tags.Portal.Each(ecs.World, func(entry *donburi.Entry) {
		drawSprite(screen, cam, entry, components.Portal.Get(entry).Interacting)
	})
}
