package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpecialTiles kills the player on contact with a hazard tile.
func UpdateSpecialTiles(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	lvl := GetLevel(ecs)
	if !ok || lvl == nil || lvl.Map == nil {
		return
	}
	body := components.Body.Get(p)
	near := gamemath.Neighbors(lvl.Map.SpecialTiles, cfg.Player.NeighborRadius(), body.Tile)
	for _, t := range near {
		if t.Special == leveldata.SpecialSpike && t.Rect.Overlaps(body.Rect) {
			Kill(ecs, p, components.DeathSpike)
			return
		}
	}
}

// UpdateSpikes kills the player on contact with a spike object.
func UpdateSpikes(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	if len(Touching(components.Object.Get(p).Object, tags.ResolvSpike)) > 0 {
		Kill(ecs, p, components.DeathSpike)
	}
}

func DrawSpikes(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	tags.Spike.Each(ecs.World, func(entry *donburi.Entry) {
		drawSprite(screen, cam, entry, false)
	})
}
