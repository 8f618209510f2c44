package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints records newly reached checkpoints as the respawn point.
// A checkpoint counts when its id is past the latest one, or when it is 0.
func UpdateCheckpoints(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	lvl := GetLevel(ecs)
	playerObj := components.Object.Get(p).Object

	for _, entry := range Touching(playerObj, tags.ResolvCheckpoint) {
		checkpoint := components.Checkpoint.Get(entry)
		if checkpoint.Reached {
			continue
		}
		if checkpoint.ID <= lvl.Record.LatestCheckpointID && checkpoint.ID != 0 {
			continue
		}
		checkpoint.Reached = true

		box := objectRect(components.Object.Get(entry).Object)
		lvl.Record.ReachCheckpoint(checkpoint.ID, box.MidBottom())
		lvl.Record.LatestDimension = lvl.Dimension
		PlaySFX(ecs, cfg.SoundCheckpoint)
		SpawnNotice(ecs, "Checkpoint reached!")

		if checkpoint.ID == cfg.Level.EndCheckpointID {
			SpawnNotice(ecs, "You made it!!!")
			SaveProgress(ecs)
			EndLevel(ecs, cfg.StateEnding, nil)
			return
		}
		if checkpoint.UnlockDimension && UnlockNextDimension(ecs) {
			SpawnNotice(ecs, "New dimension available!")
		}
		SaveProgress(ecs)
	}
}

// DrawCheckpoints draws a flag on every checkpoint not yet reached.
func DrawCheckpoints(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	tags.Checkpoint.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Checkpoint.Get(entry).Reached || !entry.HasComponent(components.Sprite) {
			return
		}
		drawSprite(screen, cam, entry, false)
	})
}
