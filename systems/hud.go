package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	hudBorder = color.RGBA{R: 69, G: 69, B: 69, A: 255}
	hudFlash  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Damage queues damage on an entry. Hits landing in the same frame add up.
func Damage(ecs *ecs.ECS, entry *donburi.Entry, amount int, source string) {
	if !entry.HasComponent(components.DamageEvent) {
		entry.AddComponent(components.DamageEvent)
		components.DamageEvent.SetValue(entry, components.DamageEventData{Source: source})
	}
	components.DamageEvent.Get(entry).Amount += amount
}

// UpdateDamage applies queued damage to the player. Dropping to the ring
// threshold loses a carried ring and running out of health kills.
func UpdateDamage(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok || !p.HasComponent(components.DamageEvent) {
		return
	}
	ev := *components.DamageEvent.Get(p)
	p.RemoveComponent(components.DamageEvent)
	if !components.Player.Get(p).Alive || ev.Amount <= 0 {
		return
	}

	hp := components.Health.Get(p)
	hp.Current = max(0, hp.Current-ev.Amount)
	components.Flash.SetValue(p, components.FlashData{Duration: 6, R: 1, G: 0.5, B: 0.5})
	PlaySFX(ecs, cfg.SoundHurt)

	if hp.Current <= cfg.Player.RingDropHP {
		DropRing(ecs)
	}
	if hp.Current <= 0 {
		Kill(ecs, p, components.DeathHealth)
	}
}

// UpdateHealthBar tracks health changes for the flash segment and floats the
// change as text.
func UpdateHealthBar(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	hp := components.Health.Get(p)
	bar := components.HealthBar.Get(p)
	if lost := stepHealthBar(bar, hp.Current); lost != 0 {
		SpawnText(ecs, fmt.Sprintf("%+d HP", -lost), components.Body.Get(p).Pos,
			dmath.Vec2{Y: cfg.Particles.TextRiseSpeed},
			cfg.Particles.TextAlphaSpeed,
			cfg.Particles.TextLifespan,
			cfg.UI.DamageText,
		)
	}
}

// stepHealthBar advances the flash one frame and returns the health lost
// since the last frame, negative for a gain.
func stepHealthBar(bar *components.HealthBarData, current int) int {
	bar.Flash--
	lost := bar.Last - current
	bar.FlashSize += math.Abs(float64(lost))

	if lost != 0 {
		bar.Flash = cfg.UI.FlashFrames
		if current <= 0 {
			bar.Flash = cfg.UI.FlashFrames * 4
		}
		bar.Lost = lost > 0
	}

	if bar.Flash <= 0 {
		if current > 0 {
			bar.FlashSize = math.Max(0, (bar.FlashSize-1)*0.98-1.5)
		} else {
			bar.FlashSize = math.Max(0, (bar.FlashSize-0.25)*0.985)
		}
	}
	bar.Last = current
	return lost
}

// healthColor runs from green at full health to red when empty.
func healthColor(ratio float64) color.RGBA {
	r, g, b := colorful.Hsv(ratio*120, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// DrawHUD renders the health bar, the flash segment and the inventory.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	hp := components.Health.Get(p)
	bar := components.HealthBar.Get(p)

	x, y := float32(cfg.UI.HealthBarX), float32(cfg.UI.HealthBarY)
	w, h := float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight)
	ratio := float32(hp.Ratio())

	vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 1, hudBorder, false)
	vector.FillRect(screen, x, y, w, h, cfg.UI.HealthBarBg, false)
	vector.FillRect(screen, x, y, w*ratio, h, healthColor(hp.Ratio()), false)

	if hp.Max > 0 && bar.FlashSize > 0 {
		fw := float32(bar.FlashSize) * w / float32(hp.Max)
		fx := x + w*ratio
		if !bar.Lost {
			fx -= fw
			fx = float32(math.Max(float64(fx), float64(x)))
		}
		vector.FillRect(screen, fx, y, fw, h, hudFlash, false)
	}

	drawInventory(ecs, screen)
}
