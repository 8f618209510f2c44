package factory

import (
	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEasterEgg spawns the egg released by a broken barrel. It bobs around
// its spawn point until collected.
func CreateEasterEgg(ecs *ecs.ECS, x, y int, img *ebiten.Image) *donburi.Entry {
	egg := archetypes.EasterEgg.Spawn(ecs)
	attachObject(ecs, egg, gamemath.Rect{X: x, Y: y, W: cfg.Egg.Size, H: cfg.Egg.Size}, tags.ResolvEgg)

	// The egg bobs using a *gween.Sequence: down, up past the origin, back.
	amp := float32(cfg.Egg.BobAmplitude)
	quarter := cfg.Egg.BobPeriod / 4
	tw := gween.NewSequence(
		gween.New(0, amp, quarter, ease.InOutSine),
		gween.New(amp, -amp, quarter*2, ease.InOutSine),
		gween.New(-amp, 0, quarter, ease.InOutSine),
	)
	components.EasterEgg.SetValue(egg, components.EasterEggData{
		Origin: dmath.Vec2{X: float64(x), Y: float64(y)},
		Bob:    tw,
	})
	components.Sprite.SetValue(egg, components.SpriteData{Image: img})
	return egg
}
