package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/fonts"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnText adds a floating text particle centred on pos.
func SpawnText(e *ecs.ECS, msg string, pos, vel dmath.Vec2, alphaSpeed, lifespan float64, clr color.RGBA) *donburi.Entry {
	entry := archetypes.TextParticle.Spawn(e)
	components.TextParticle.SetValue(entry, components.TextParticleData{
		Text:       msg,
		Pos:        pos,
		Vel:        vel,
		Color:      clr,
		Alpha:      255,
		AlphaSpeed: alphaSpeed,
		Lifespan:   lifespan,
	})
	return entry
}

// SpawnNotice floats a message up from the player's head.
func SpawnNotice(e *ecs.ECS, msg string) {
	pos := dmath.Vec2{}
	if p, ok := playerEntry(e); ok {
		r := components.Body.Get(p).Rect
		pos = dmath.Vec2{X: float64(r.X + r.W/2), Y: float64(r.Y)}
	}
	SpawnText(e, msg, pos,
		dmath.Vec2{Y: cfg.Particles.TextRiseSpeed},
		cfg.Particles.TextAlphaSpeed,
		cfg.Particles.NoticeLifespan,
		cfg.UI.NoticeColor,
	)
}

// UpdateParticles ages every particle and removes the dead ones.
func UpdateParticles(e *ecs.ECS) {
	dt := GetFrame(e).DT
	var dead []*donburi.Entry

	components.TextParticle.Each(e.World, func(entry *donburi.Entry) {
		if !stepText(components.TextParticle.Get(entry), dt) {
			dead = append(dead, entry)
		}
	})
	components.AngularParticle.Each(e.World, func(entry *donburi.Entry) {
		if !stepAngular(components.AngularParticle.Get(entry), dt) {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}

// stepText advances a text particle and reports whether it is still alive.
func stepText(p *components.TextParticleData, dt float64) bool {
	p.Vel.Y *= cfg.Particles.TextVelDamping
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
	p.Alpha = math.Max(0, p.Alpha-p.AlphaSpeed*dt)
	p.Age++
	return p.Age <= p.Lifespan && p.Alpha > 0
}

// stepAngular advances a spark and reports whether it is still alive.
func stepAngular(p *components.AngularParticleData, dt float64) bool {
	p.Pos.X += math.Cos(p.Angle) * p.Speed * dt
	p.Pos.Y += math.Sin(p.Angle) * p.Speed * dt
	p.Size -= p.SizeDecay * dt
	return p.Size > 0
}

// CreateExplosion bursts sparks of the given preset at a world position.
func CreateExplosion(e *ecs.ECS, kind cfg.ExplosionKind, pos dmath.Vec2) {
	preset, ok := cfg.Explosions[kind]
	if !ok {
		return
	}
	for i := 0; i < preset.Count; i++ {
		entry := archetypes.AngularParticle.Spawn(e)
		components.AngularParticle.SetValue(entry, components.AngularParticleData{
			Pos:       pos,
			Angle:     rand.Float64() * 2 * math.Pi,
			Speed:     preset.Speed * (0.4 + rand.Float64()*0.6),
			Size:      preset.Size * (0.5 + rand.Float64()*0.5),
			SizeDecay: preset.SizeDecay,
			Glow:      preset.Glow,
			Color:     preset.Colors[rand.Intn(len(preset.Colors))],
		})
	}
	if kind == cfg.ExplosionTurret {
		TriggerScreenShake(e, 3, 12)
	}
}

// UpdateEffects ticks flash timers.
func UpdateEffects(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// DrawTextParticles renders floating text in world space.
func DrawTextParticles(e *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(e)
	face := fonts.Regular.Get()
	components.TextParticle.Each(e.World, func(entry *donburi.Entry) {
		p := components.TextParticle.Get(entry)
		at := cam.Apply(p.Pos)
		b := text.BoundString(face, p.Text)
		clr := p.Color
		clr.A = uint8(p.Alpha)
		text.Draw(screen, p.Text, face, int(at.X)-b.Dx()/2, int(at.Y), premultiply(clr))
	})
}

// DrawExplosions renders sparks with an additive glow.
func DrawExplosions(e *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(e)
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.AngularParticle) {
			return
		}
		p := components.AngularParticle.Get(entry)
		at := cam.Apply(p.Pos)
		vector.FillRect(screen, float32(at.X), float32(at.Y), float32(p.Size), float32(p.Size), p.Color, false)
		if p.Glow {
			cx, cy := float32(at.X+p.Size/2), float32(at.Y+p.Size/2)
			vector.FillCircle(screen, cx, cy, float32(p.Size*2), color.RGBA{R: 20, G: 20, B: 20, A: 0}, true)
		}
	})
}

// premultiply scales the colour channels by alpha for ebiten's blending.
func premultiply(c color.RGBA) color.RGBA {
	k := float64(c.A) / 255
	return color.RGBA{R: uint8(float64(c.R) * k), G: uint8(float64(c.G) * k), B: uint8(float64(c.B) * k), A: c.A}
}
