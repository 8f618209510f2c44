package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Note       = donburi.NewTag().SetName("Note")
	Portal     = donburi.NewTag().SetName("Portal")
	Spike      = donburi.NewTag().SetName("Spike")
	Shooter    = donburi.NewTag().SetName("Shooter")
	Bullet     = donburi.NewTag().SetName("Bullet")
	Ring       = donburi.NewTag().SetName("Ring")
	Barrel     = donburi.NewTag().SetName("Barrel")
	EasterEgg  = donburi.NewTag().SetName("EasterEgg")
	Particle   = donburi.NewTag().SetName("Particle")
)

// Resolv tags for trigger queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvCheckpoint = "checkpoint"
	ResolvNote       = "note"
	ResolvPortal     = "portal"
	ResolvSpike      = "spike"
	ResolvShooter    = "shooter"
	ResolvRing       = "ring"
	ResolvBarrel     = "barrel"
	ResolvEgg        = "egg"
)
