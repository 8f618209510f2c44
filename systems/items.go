package systems

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems/factory"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems handles the ring pickup, barrels and the easter egg.
func UpdateItems(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	updateRing(ecs, p)
	updateBarrels(ecs, p)
	updateEggs(ecs, p)
}

func updateRing(ecs *ecs.ECS, p *donburi.Entry) {
	lvl := GetLevel(ecs)
	tags.Ring.Each(ecs.World, func(entry *donburi.Entry) {
		ring := components.Ring.Get(entry)
		if !ring.OnGround || !Overlaps(p, entry) {
			return
		}
		ring.OnGround = false
		lvl.Record.HasRing = true
		SpawnNotice(ecs, "Grabbed ring")
		PlaySFX(ecs, cfg.SoundItemPickup)
		SaveProgress(ecs)
	})
}

// DropRing puts the carried ring back at the last checkpoint.
func DropRing(ecs *ecs.ECS) {
	lvl := GetLevel(ecs)
	if lvl == nil || !lvl.Record.HasRing {
		return
	}
	at := lvl.Spawn
	if lvl.Record.HasCheckpoint() {
		at = lvl.Record.LatestCheckpoint
	}
	tags.Ring.Each(ecs.World, func(entry *donburi.Entry) {
		components.Ring.Get(entry).OnGround = true
		obj := components.Object.Get(entry).Object
		obj.X = at.X - obj.W/2
		obj.Y = at.Y - obj.H
		obj.Update()
	})
	lvl.Record.HasRing = false
	SpawnNotice(ecs, "Ring dropped at last checkpoint!")
	SaveProgress(ecs)
}

func updateBarrels(ecs *ecs.ECS, p *donburi.Entry) {
	smash := GetAction(GetOrCreateInput(ecs), cfg.ActionSmash).JustPressed
	lvl := GetLevel(ecs)

	var broken []*donburi.Entry
	tags.Barrel.Each(ecs.World, func(entry *donburi.Entry) {
		barrel := components.Barrel.Get(entry)
		barrel.Interacting = Overlaps(p, entry)
		if barrel.Interacting && smash {
			broken = append(broken, entry)
		}
	})

	for _, entry := range broken {
		box := objectRect(components.Object.Get(entry).Object)
		easter := components.Barrel.Get(entry).Easter
		removeEntity(ecs, entry)
		PlaySFX(ecs, cfg.SoundBarrelBreak)
		CreateExplosion(ecs, cfg.ExplosionSmoke, box.Center())
		if easter && !lvl.Record.HasEasterEgg {
			factory.CreateEasterEgg(ecs, box.X, box.Y, factory.Sprites(lvl.Sprites).Get("egg"))
		}
	}
}

func updateEggs(ecs *ecs.ECS, p *donburi.Entry) {
	dt := GetFrame(ecs).DT
	lvl := GetLevel(ecs)

	var picked []*donburi.Entry
	tags.EasterEgg.Each(ecs.World, func(entry *donburi.Entry) {
		if Overlaps(p, entry) {
			picked = append(picked, entry)
			return
		}
		egg := components.EasterEgg.Get(entry)
		offset, _, done := egg.Bob.Update(float32(dt))
		if done {
			egg.Bob.Reset()
		}
		egg.Offset = float64(offset)
		obj := components.Object.Get(entry).Object
		obj.Y = egg.Origin.Y + egg.Offset
		obj.Update()
	})

	for _, entry := range picked {
		removeEntity(ecs, entry)
		lvl.Record.HasEasterEgg = true
		SpawnNotice(ecs, "Found an easter egg!")
		PlaySFX(ecs, cfg.SoundItemPickup)
		SaveProgress(ecs)
	}
}

func DrawItems(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	tags.Ring.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Ring.Get(entry).OnGround {
			drawSprite(screen, cam, entry, false)
		}
	})
	tags.Barrel.Each(ecs.World, func(entry *donburi.Entry) {
		drawSprite(screen, cam, entry, components.Barrel.Get(entry).Interacting)
	})
	tags.EasterEgg.Each(ecs.World, func(entry *donburi.Entry) {
		drawSprite(screen, cam, entry, false)
	})
}

// drawInventory shows the collected ring and egg in the HUD.
func drawInventory(ecs *ecs.ECS, screen *ebiten.Image) {
	lvl := GetLevel(ecs)
	if lvl == nil {
		return
	}
	sprites := factory.Sprites(lvl.Sprites)
	if lvl.Record.HasRing {
		drawIcon(screen, sprites.Get("ring"), cfg.UI.RingIconX, cfg.UI.RingIconY)
	}
	if lvl.Record.HasEasterEgg {
		drawIcon(screen, sprites.Get("egg"), cfg.UI.EggIconX, cfg.UI.EggIconY)
	}
}

func drawIcon(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}
