package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundGrapple
	SoundTurretShoot
	SoundItemPickup
	SoundCheckpoint
	SoundExplosion
	SoundPortal
	SoundHurt
	SoundBarrelBreak
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	LevelMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.6,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		LevelMusic: "audio/music/level.wav",
		SFXPaths: map[SoundID]string{
			SoundJump:         "audio/sfx/jump.wav",
			SoundGrapple:      "audio/sfx/grapple.wav",
			SoundTurretShoot:  "audio/sfx/turret_shoot.wav",
			SoundItemPickup:   "audio/sfx/item_pickup.wav",
			SoundCheckpoint:   "audio/sfx/checkpoint.wav",
			SoundExplosion:    "audio/sfx/explosion.wav",
			SoundPortal:       "audio/sfx/portal.wav",
			SoundHurt:         "audio/sfx/hurt.wav",
			SoundBarrelBreak:  "audio/sfx/barrel_break.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundTurretShoot: 0.6,
			SoundExplosion:   1.3,
		},
	}
}
