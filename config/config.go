package config

import (
	"image/color"
	"time"

	"github.com/automoto/riftline/shared/gamemath"
)

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	WindowScale int
	TileWidth   int
	TileHeight  int
	Title       string
	AppName     string // gdata storage namespace
}

// TimeConfig converts wall-clock frame time into simulation units.
type TimeConfig struct {
	DeltaScale float64 // dt = seconds * DeltaScale
	DeltaCap   float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  int
	Height int
	MaxHP  int

	// Walking is suppressed outside [MinX, MaxX]
	MinX float64
	MaxX float64

	MaxFall          float64
	DeathY           float64 // falling below this kills
	MomentumFriction float64 // per-step decay of swing momentum

	// RingDropHP is the health at or below which a carried ring is lost
	RingDropHP int
}

// NeighborRadius is how many tiles around the player are tested for
// collision.
func (p PlayerConfig) NeighborRadius() int {
	r := p.Width
	if p.Height > r {
		r = p.Height
	}
	return r/C.TileWidth + 5
}

// EnemyConfig contains patrol entity configuration
type EnemyConfig struct {
	PatrolCooldown time.Duration
	DefaultSpeed   float64
	NeighborRadius int
	ContactDamage  int // moving walls only
}

// ShooterConfig contains turret and bullet configuration
type ShooterConfig struct {
	Size          int
	BulletSize    int
	BulletDamage  int
	BulletSpeed   float64
	SoundRange    float64 // pixels
	BulletColor   color.RGBA
	DefaultMaxDst float64
}

// TransitionConfig contains fade transition configuration
type TransitionConfig struct {
	FadeSpeed float64 // alpha per dt unit
	Color     color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 1 snaps to the player
}

// NoteConfig contains tutorial note configuration
type NoteConfig struct {
	AlphaSpeed float64
	TextOffset float64 // pixels above the note
	TextColor  color.RGBA

	// {placeholder} substitutions in note text per input device
	KeyboardLabels map[string]string
	GamepadLabels  map[string]string
}

// LevelConfig names the level map and its terminal checkpoint
type LevelConfig struct {
	MapPath         string
	EndCheckpointID int
	SpawnLayer      string
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarX      float64
	HealthBarY      float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	FlashFrames     int
	DamageText      color.RGBA
	NoticeColor     color.RGBA
	TextColor       color.RGBA

	SoundIconX    float64
	SoundIconY    float64
	SoundIconSize float64

	RingIconX float64
	RingIconY float64
	EggIconX  float64
	EggIconY  float64
}

// ParticleConfig contains text and angular particle tuning
type ParticleConfig struct {
	TextVelDamping float64
	TextRiseSpeed  float64
	TextAlphaSpeed float64
	TextLifespan   float64
	NoticeLifespan float64
}

// ExplosionKind selects a particle burst preset.
type ExplosionKind int

const (
	ExplosionFire ExplosionKind = iota
	ExplosionTurret
	ExplosionSmoke
)

// ExplosionConfig describes one particle burst.
type ExplosionConfig struct {
	Count     int
	Speed     float64
	Size      float64
	SizeDecay float64
	Glow      bool
	Colors    []color.RGBA
}

// EggConfig contains easter egg bobbing configuration
type EggConfig struct {
	BobAmplitude float64
	BobPeriod    float32 // dt units for a full up-down cycle
	Size         int
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	PanelColor   color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	TextColor    color.RGBA
	VolumeStep   float64
}

// MenuConfig contains main menu and ending configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
	EndingLines       []string
}

// Global configuration instances
var C *Config
var Time TimeConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Grapple gamemath.GrappleConfig
var Shooter ShooterConfig
var Transition TransitionConfig
var Camera CameraConfig
var Note NoteConfig
var Level LevelConfig
var UI UIConfig
var Particles ParticleConfig
var Explosions map[ExplosionKind]ExplosionConfig
var Egg EggConfig
var Pause PauseConfig
var Menu MenuConfig

func init() {
	C = &Config{
		Width:       420,
		Height:      200,
		WindowScale: 3,
		TileWidth:   16,
		TileHeight:  16,
		Title:       "Riftline",
		AppName:     "riftline",
	}

	Time = TimeConfig{
		DeltaScale: 100,
		DeltaCap:   10,
	}

	Player = PlayerConfig{
		Width:            10,
		Height:           16,
		MaxHP:            100,
		MinX:             0,
		MaxX:             2544,
		MaxFall:          17,
		DeathY:           2000,
		MomentumFriction: 0.05,
		RingDropHP:       50,
	}

	Enemy = EnemyConfig{
		PatrolCooldown: 500 * time.Millisecond,
		DefaultSpeed:   1,
		NeighborRadius: 2,
		ContactDamage:  0,
	}

	Grapple = gamemath.DefaultGrappleConfig()

	Shooter = ShooterConfig{
		Size:          16,
		BulletSize:    3,
		BulletDamage:  20,
		BulletSpeed:   5.3,
		SoundRange:    15 * 16,
		BulletColor:   color.RGBA{R: 100, G: 98, B: 25, A: 255},
		DefaultMaxDst: 200,
	}

	Transition = TransitionConfig{
		FadeSpeed: 4,
		Color:     color.RGBA{A: 255},
	}

	Camera = CameraConfig{
		FollowSmoothing: 1,
	}

	Note = NoteConfig{
		AlphaSpeed: 3.3,
		TextOffset: 20,
		TextColor:  color.RGBA{R: 100, G: 100, B: 100, A: 255},
		KeyboardLabels: map[string]string{
			"jump":     "SPACE",
			"interact": "E",
			"smash":    "G",
			"mode":     "Q",
		},
		GamepadLabels: map[string]string{
			"jump":     "A",
			"interact": "RB",
			"smash":    "X",
			"mode":     "B",
		},
	}

	Level = LevelConfig{
		MapPath:         "levels/riftline.tmx",
		EndCheckpointID: 10,
		SpawnLayer:      "player",
	}

	UI = UIConfig{
		HealthBarX:      8,
		HealthBarY:      8,
		HealthBarWidth:  60,
		HealthBarHeight: 5,
		HealthBarBg:     color.RGBA{R: 30, G: 30, B: 36, A: 200},
		FlashFrames:     12,
		DamageText:      color.RGBA{R: 230, G: 70, B: 60, A: 255},
		NoticeColor:     color.RGBA{R: 218, G: 224, B: 234, A: 255},
		TextColor:       color.RGBA{R: 218, G: 224, B: 234, A: 255},
		SoundIconX:      396,
		SoundIconY:      6,
		SoundIconSize:   16,
		RingIconX:       210,
		RingIconY:       10,
		EggIconX:        250,
		EggIconY:        10,
	}

	Particles = ParticleConfig{
		TextVelDamping: 0.93,
		TextRiseSpeed:  -1.5,
		TextAlphaSpeed: 3,
		TextLifespan:   80,
		NoticeLifespan: 120,
	}

	Explosions = map[ExplosionKind]ExplosionConfig{
		ExplosionFire: {
			Count: 18, Speed: 2.2, Size: 4, SizeDecay: 0.12, Glow: true,
			Colors: []color.RGBA{{R: 255, G: 170, B: 40, A: 255}, {R: 230, G: 80, B: 30, A: 255}},
		},
		ExplosionTurret: {
			Count: 26, Speed: 2.8, Size: 5, SizeDecay: 0.1, Glow: true,
			Colors: []color.RGBA{{R: 190, G: 190, B: 200, A: 255}, {R: 255, G: 120, B: 40, A: 255}},
		},
		ExplosionSmoke: {
			Count: 6, Speed: 0.8, Size: 3, SizeDecay: 0.08,
			Colors: []color.RGBA{{R: 160, G: 160, B: 160, A: 255}},
		},
	}

	Egg = EggConfig{
		BobAmplitude: 7.5,
		BobPeriod:    120,
		Size:         8,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 150},
		PanelColor:   color.RGBA{R: 20, G: 20, B: 28, A: 230},
		ButtonIdle:   color.RGBA{R: 50, G: 50, B: 64, A: 255},
		ButtonHover:  color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPress:  color.RGBA{R: 35, G: 35, B: 45, A: 255},
		TextColor:    color.RGBA{R: 230, G: 230, B: 240, A: 255},
		VolumeStep:   0.1,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 14, G: 13, B: 20, A: 255},
		TitleColor:        color.RGBA{R: 218, G: 224, B: 234, A: 255},
		TextColorNormal:   color.RGBA{R: 120, G: 120, B: 140, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 200, B: 80, A: 255},
		TitleY:            50,
		MenuStartY:        100,
		MenuItemHeight:    20,
		MenuOptions:       []string{"CONTINUE", "NEW GAME", "QUIT"},
		EndingLines: []string{
			"You made it home.",
			"Thanks for playing!",
			"Press ENTER to return to the menu",
		},
	}
}
