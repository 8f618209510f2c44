package factory

import (
	"fmt"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/automoto/riftline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an entity from the enemies layer. The object name is
// its kind. Moving kinds read speed and the two wander points from their
// properties; static kinds ignore them.
func CreateEnemy(ecs *ecs.ECS, o leveldata.Object, tileW, tileH float64, sprites Sprites) (*donburi.Entry, error) {
	kind, err := components.ParseEnemyKind(o.Name)
	if err != nil {
		return nil, fmt.Errorf("enemy %d: %w", o.ID, err)
	}

	var patrol gamemath.Patrol
	speed := 0.0
	if !kind.Static() {
		a, err := o.TilePoint("wander_point_a")
		if err != nil {
			return nil, fmt.Errorf("enemy %d wander_point_a: %w", o.ID, err)
		}
		b, err := o.TilePoint("wander_point_b")
		if err != nil {
			return nil, fmt.Errorf("enemy %d wander_point_b: %w", o.ID, err)
		}
		speed = cfg.Enemy.DefaultSpeed
		if o.Has("speed") {
			speed = o.Float("speed")
		}
		patrol = gamemath.NewPatrol(a, b, speed, tileW, tileH, cfg.Enemy.PatrolCooldown)
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	box := o.Rect()
	body := gamemath.NewBody(dmath.Vec2{X: o.X, Y: o.Y}, box.W, box.H, tileW, tileH)
	body.MaxFall = cfg.Player.MaxFall
	components.Body.Set(enemy, body)
	attachObject(ecs, enemy, body.Rect, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      kind,
		BaseSpeed: speed,
		Patrol:    patrol,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{Image: sprites.Get(o.Name)})
	return enemy, nil
}
