package components

import "github.com/yohamta/donburi"

// DeathCause says what killed the player.
type DeathCause string

const (
	DeathHealth DeathCause = "health"
	DeathSpike  DeathCause = "spike"
	DeathFall   DeathCause = "fall"
)

// DeathData marks a player whose retry fade has been started.
type DeathData struct {
	Cause DeathCause
}

var Death = donburi.NewComponentType[DeathData]()
