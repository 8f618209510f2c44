package factory

import (
	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/assets/animations"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// walkHold is how long each walk frame shows, in dt units.
const walkHold = 8

// CreatePlayer spawns the player standing on midBottom.
func CreatePlayer(ecs *ecs.ECS, midBottom dmath.Vec2, sprites Sprites) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	topLeft := dmath.Vec2{X: midBottom.X - float64(w)/2, Y: midBottom.Y - float64(h)}
	body := gamemath.NewBody(topLeft, w, h, float64(cfg.C.TileWidth), float64(cfg.C.TileHeight))
	body.MaxFall = cfg.Player.MaxFall
	components.Body.Set(player, body)

	attachObject(ecs, player, body.Rect, tags.ResolvPlayer)

	grapple := cfg.Grapple
	grapple.TileW, grapple.TileH = float64(cfg.C.TileWidth), float64(cfg.C.TileHeight)
	components.Player.SetValue(player, components.PlayerData{
		Pull:  gamemath.NewGrapple(grapple),
		Swing: gamemath.NewSwing(grapple),
		Mode:  cfg.GrapplePull,
		Alive: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHP,
		Max:     cfg.Player.MaxHP,
	})
	components.HealthBar.SetValue(player, components.HealthBarData{Last: cfg.Player.MaxHP})

	frames := map[gamemath.Facing][]*ebiten.Image{
		gamemath.FacingRight: sprites.Strip("walk_right"),
		gamemath.FacingLeft:  sprites.Strip("walk_left"),
	}
	components.Animation.SetValue(player, components.AnimationData{
		Frames: frames,
		Walk:   animations.NewAnimation(len(frames[gamemath.FacingRight]), walkHold),
	})
	components.Sprite.SetValue(player, components.SpriteData{Image: sprites.Get("walk_right")})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return player
}
