package systems

import (
	"image/color"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor          = color.RGBA{R: 42, G: 45, B: 55, A: 255}
	ungrappleableColor = color.RGBA{R: 92, G: 40, B: 48, A: 255}
)

// UpdateEnemies walks every moving entity between its wander points. Walls
// and platforms shove the player out of their way and carry a player
// standing on them. Static kinds are left alone.
func UpdateEnemies(ecs *ecs.ECS) {
	frame := GetFrame(ecs)
	lvl := GetLevel(ecs)
	if lvl == nil || lvl.Map == nil {
		return
	}

	var playerBody *gamemath.Body
	p, hasPlayer := playerEntry(ecs)
	if hasPlayer {
		playerBody = components.Body.Get(p)
	}

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Kind.Static() {
			return
		}
		body := components.Body.Get(entry)

		enemy.Patrol.Drive(body, frame.DT)
		radius := body.Rect.W/lvl.Map.TileW + cfg.Enemy.NeighborRadius
		if h := body.Rect.H/lvl.Map.TileH + cfg.Enemy.NeighborRadius; h > radius {
			radius = h
		}
		gamemath.MoveAndPush(body, lvl.Map.Tiles.Rects(body.Tile, radius), playerBody)
		body.ApplyGravity(frame.DT)
		enemy.Patrol.Turn(body, frame.Now)

		if hasPlayer && cfg.Enemy.ContactDamage > 0 && enemy.Kind == components.EnemyMovingWall &&
			touchesSide(body.Rect, playerBody.Rect) {
			Damage(ecs, p, cfg.Enemy.ContactDamage, "wall")
		}
	})

	if hasPlayer {
		syncObject(components.Object.Get(p).Object, playerBody)
	}
	UpdateObjects(ecs)
}

// touchesSide reports whether b sits flush against a's left or right edge.
func touchesSide(a, b gamemath.Rect) bool {
	if b.Y >= a.Bottom() || a.Y >= b.Bottom() {
		return false
	}
	return b.X == a.Right() || b.Right() == a.X
}

// enemyTargets lists enemy boxes for the grapple probe.
func enemyTargets(ecs *ecs.ECS) []gamemath.Target {
	var targets []gamemath.Target
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		targets = append(targets, gamemath.Target{
			Rect:          components.Body.Get(entry).Rect,
			Ungrappleable: components.Enemy.Get(entry).Kind == components.EnemyUngrappleable,
		})
	})
	return targets
}

// solidEnemies lists enemy boxes the player collides with. Ungrappleable
// enemies are passed through.
func solidEnemies(ecs *ecs.ECS) []gamemath.Rect {
	var rects []gamemath.Rect
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Kind == components.EnemyUngrappleable {
			return
		}
		rects = append(rects, components.Body.Get(entry).Rect)
	})
	return rects
}

func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		r := components.Body.Get(entry).Rect
		if sprite := components.Sprite.Get(entry); sprite.Image != nil {
			drawSprite(screen, cam, entry, false)
			return
		}
		clr := wallColor
		if components.Enemy.Get(entry).Kind == components.EnemyUngrappleable {
			clr = ungrappleableColor
		}
		drawBox(screen, cam, r.X, r.Y, r.W, r.H, clr)
	})
}
