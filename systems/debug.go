package systems

import (
	"image/color"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	debugTileColor    = color.RGBA{100, 100, 100, 255}
	debugPlayerColor  = color.RGBA{0, 0, 255, 255}
	debugEnemyColor   = color.RGBA{255, 0, 0, 255}
	debugTriggerColor = color.RGBA{0, 255, 255, 255}
)

// UpdateDebug flips the hitbox overlay on F3.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(GetOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		d := GetOrCreateDebug(ecs)
		d.Hitboxes = !d.Hitboxes
	}
}

// DrawDebug outlines every trigger box on screen and the tiles the player
// collides against this frame.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Hitboxes {
		return
	}
	camera := GetCamera(ecs)

	if p, ok := playerEntry(ecs); ok {
		if lvl := GetLevel(ecs); lvl != nil && lvl.Map != nil {
			body := components.Body.Get(p)
			for _, r := range lvl.Map.Tiles.Rects(body.Tile, cfg.Player.NeighborRadius()) {
				outline(screen, camera, r, debugTileColor)
			}
		}
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	view := gamemath.Rect{W: cfg.C.Width, H: cfg.C.Height}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		r := objectRect(obj)
		at := camera.Apply(dmath.Vec2{X: float64(r.X), Y: float64(r.Y)})
		if !view.Overlaps(gamemath.Rect{X: int(at.X), Y: int(at.Y), W: r.W, H: r.H}) {
			continue
		}

		c := debugTriggerColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = debugPlayerColor
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = debugEnemyColor
		}
		outline(screen, camera, r, c)
	}
}

func outline(screen *ebiten.Image, camera *components.CameraData, r gamemath.Rect, c color.RGBA) {
	at := camera.Apply(dmath.Vec2{X: float64(r.X), Y: float64(r.Y)})
	vector.StrokeRect(screen, float32(at.X)+0.5, float32(at.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, c, false)
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	ent, ok := components.Debug.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Debug))
	}
	return components.Debug.Get(ent)
}
