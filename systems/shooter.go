package systems

import (
	"math"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateShooters fires bullets on each turret's cooldown, moves bullets and
// applies their hits. A player landing on a turret from the air destroys it.
func UpdateShooters(ecs *ecs.ECS) {
	frame := GetFrame(ecs)
	p, hasPlayer := playerEntry(ecs)

	var destroyed []*donburi.Entry
	tags.Shooter.Each(ecs.World, func(entry *donburi.Entry) {
		shooter := components.Shooter.Get(entry)
		box := objectRect(components.Object.Get(entry).Object)

		if frame.Now-shooter.LastShot >= shooter.Cooldown {
			shooter.LastShot = frame.Now
			fireBullet(ecs, shooter, box.Center())
			if hasPlayer {
				top := dmath.Vec2{X: float64(box.X), Y: float64(box.Y)}
				if gamemath.Distance(top, components.Body.Get(p).Pos) < cfg.Shooter.SoundRange {
					PlaySFX(ecs, cfg.SoundTurretShoot)
				}
			}
		}

		if hasPlayer && Overlaps(p, entry) && !components.Body.Get(p).TouchedGround {
			destroyed = append(destroyed, entry)
		}
	})

	for _, entry := range destroyed {
		box := objectRect(components.Object.Get(entry).Object)
		CreateExplosion(ecs, cfg.ExplosionTurret, dmath.Vec2{X: float64(box.X), Y: float64(box.Y)})
		PlaySFX(ecs, cfg.SoundExplosion)
		removeEntity(ecs, entry)
	}

	updateBullets(ecs, frame.DT, p, hasPlayer)
}

func fireBullet(ecs *ecs.ECS, shooter *components.ShooterData, from dmath.Vec2) {
	rad := -shooter.Angle * math.Pi / 180
	entry := archetypes.Bullet.Spawn(ecs)
	components.Bullet.SetValue(entry, components.BulletData{
		Pos:     from,
		Step:    dmath.Vec2{X: math.Cos(rad) * cfg.Shooter.BulletSpeed, Y: math.Sin(rad) * cfg.Shooter.BulletSpeed},
		MaxDist: shooter.MaxDist,
		Damage:  shooter.Damage,
		Alive:   true,
	})
}

func updateBullets(ecs *ecs.ECS, dt float64, p *donburi.Entry, hasPlayer bool) {
	var dead []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		stepBullet(bullet, dt)

		if hasPlayer && bulletRect(bullet).Overlaps(components.Body.Get(p).Rect) {
			damage := bullet.Damage
			if damage == 0 {
				damage = cfg.Shooter.BulletDamage
			}
			Damage(ecs, p, damage, "bullet")
			bullet.Alive = false
		}
		if !bullet.Alive {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		CreateExplosion(ecs, cfg.ExplosionFire, components.Bullet.Get(entry).Pos)
		ecs.World.Remove(entry.Entity())
	}
}

// stepBullet moves a bullet and retires it past its range.
func stepBullet(b *components.BulletData, dt float64) {
	dx, dy := b.Step.X*dt, b.Step.Y*dt
	b.Pos.X += dx
	b.Pos.Y += dy
	b.Covered += math.Hypot(dx, dy)
	if b.Covered > b.MaxDist {
		b.Alive = false
	}
}

func bulletRect(b *components.BulletData) gamemath.Rect {
	size := cfg.Shooter.BulletSize
	return gamemath.RectAt(dmath.Vec2{X: b.Pos.X - float64(size), Y: b.Pos.Y - float64(size)}, size*2, size*2)
}

func DrawShooters(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	tags.Bullet.Each(ecs.World, func(entry *donburi.Entry) {
		at := cam.Apply(components.Bullet.Get(entry).Pos)
		vector.FillCircle(screen, float32(at.X), float32(at.Y), float32(cfg.Shooter.BulletSize), cfg.Shooter.BulletColor, true)
	})
	tags.Shooter.Each(ecs.World, func(entry *donburi.Entry) {
		drawSprite(screen, cam, entry, false)
	})
}
