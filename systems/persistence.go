package systems

import (
	"github.com/automoto/riftline/save"
	"github.com/yohamta/donburi/ecs"
)

// SaveProgress flushes the level's record to its store. Write failures are
// logged and play continues.
func SaveProgress(e *ecs.ECS) {
	lvl := GetLevel(e)
	if lvl == nil {
		return
	}
	lvl.Record.LastVolume = Volume()
	save.Flush(lvl.Store, lvl.Record)
}
