package systems

import (
	"log"

	"github.com/automoto/riftline/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Kill marks the player dead. The transition stage fades out and retries
// from the last checkpoint.
func Kill(e *ecs.ECS, player *donburi.Entry, cause components.DeathCause) {
	p := components.Player.Get(player)
	if !p.Alive {
		return
	}
	p.Alive = false
	p.Hook().Reset()
	if !player.HasComponent(components.Death) {
		player.AddComponent(components.Death)
	}
	components.Death.SetValue(player, components.DeathData{Cause: cause})
	log.Printf("Player died: %s", cause)
}

func deathCause(player *donburi.Entry) components.DeathCause {
	if !player.HasComponent(components.Death) {
		return components.DeathHealth
	}
	return components.Death.Get(player).Cause
}

// IsDead reports whether the player has died this run.
func IsDead(e *ecs.ECS) bool {
	p, ok := playerEntry(e)
	return ok && !components.Player.Get(p).Alive
}
