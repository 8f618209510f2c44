package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	grappleWarnColor = color.RGBA{R: 180, G: 32, B: 42, A: 255}
	grappleLineColor = color.RGBA{R: 254, G: 243, B: 192, A: 255}
	grappleSpark     = color.RGBA{R: 254, G: 243, B: 192, A: 255}
)

func UpdatePlayer(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(p)
	if !player.Alive {
		return
	}
	body := components.Body.Get(p)
	frame := GetFrame(ecs)
	input := GetOrCreateInput(ecs)
	lvl := GetLevel(ecs)

	if GetAction(input, cfg.ActionToggleGrappleMode).JustPressed {
		player.SetMode(player.Mode.Toggle())
		SpawnNotice(ecs, "Grapple mode: "+string(player.Mode))
	}

	handleMovementInput(ecs, input, player, body, frame.DT)
	body.DecayMomentum(cfg.Player.MomentumFriction)
	body.ApplyGravity(frame.DT)

	var tiles gamemath.TileLookup
	if lvl != nil && lvl.Map != nil {
		tiles = lvl.Map.Tiles.Rects
	}
	updateHook(ecs, player, body, input, frame, tiles)

	var colliders []gamemath.Rect
	if tiles != nil {
		colliders = tiles(body.Tile, cfg.Player.NeighborRadius())
	}
	colliders = append(colliders, solidEnemies(ecs)...)
	gamemath.MoveAndCollide(body, colliders)
	syncObject(components.Object.Get(p).Object, body)

	if anim := components.Animation.Get(p); anim.Walk != nil {
		anim.Walk.Update(frame.DT)
	}

	if body.Pos.Y > cfg.Player.DeathY {
		Kill(ecs, p, components.DeathFall)
	}
}

func handleMovementInput(ecs *ecs.ECS, input *components.InputData, player *components.PlayerData, body *gamemath.Body, dt float64) {
	walk := gamemath.WalkInput{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
	}
	bounds := gamemath.Bounds{MinX: cfg.Player.MinX, MaxX: cfg.Player.MaxX}
	body.ApplyWalkInput(walk, player.Speed, dt, bounds)

	if GetAction(input, cfg.ActionJump).JustPressed && body.Jump(player.Jump) {
		PlaySFX(ecs, cfg.SoundJump)
		CreateExplosion(ecs, cfg.ExplosionSmoke, body.Rect.MidBottom())
	}
	body.SettleState()
}

// updateHook runs the active grapple and turns its events into feedback.
func updateHook(ecs *ecs.ECS, player *components.PlayerData, body *gamemath.Body, input *components.InputData, frame components.FrameData, tiles gamemath.TileLookup) {
	in := gamemath.GrappleInput{
		Pressed:  input.GrapplePressed(),
		Released: input.GrappleReleased(),
		Aim:      GetCamera(ecs).ToWorld(input.Cursor),
	}
	ev := player.Hook().Update(body, in, frame.Now, frame.DT, tiles, enemyTargets(ecs))

	switch ev {
	case gamemath.GrappleAttached:
		PlaySFX(ecs, cfg.SoundGrapple)
	case gamemath.GrappleRejectedDownward:
		grappleWarning(ecs, body, "Cannot grapple downwards")
	case gamemath.GrappleRejectedEnemy:
		grappleWarning(ecs, body, "Cannot grapple onto enemies")
	case gamemath.GrappleRejectedUngrappleable:
		grappleWarning(ecs, body, "Target is ungrappleable")
	}

	if player.Mode == cfg.GrapplePull && player.Pull.Attached && rand.Float64() < 0.2 {
		spawnGrappleSpark(ecs, body.Pos)
	}
}

func grappleWarning(ecs *ecs.ECS, body *gamemath.Body, msg string) {
	SpawnText(ecs, msg, body.Pos,
		dmath.Vec2{Y: cfg.Particles.TextRiseSpeed},
		cfg.Particles.TextAlphaSpeed,
		cfg.Particles.TextLifespan,
		grappleWarnColor,
	)
}

func spawnGrappleSpark(ecs *ecs.ECS, at dmath.Vec2) {
	entry := archetypes.AngularParticle.Spawn(ecs)
	components.AngularParticle.SetValue(entry, components.AngularParticleData{
		Pos:       at,
		Angle:     -rand.Float64() * math.Pi,
		Speed:     0.45,
		Size:      3,
		SizeDecay: 0.03,
		Glow:      true,
		Color:     grappleSpark,
	})
}

// DrawPlayer draws the grapple line under the player sprite.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	p, ok := playerEntry(ecs)
	if !ok {
		return
	}
	cam := GetCamera(ecs)
	player := components.Player.Get(p)
	body := components.Body.Get(p)

	if start, end, visible := player.Hook().Line(); visible {
		a, b := cam.Apply(start), cam.Apply(end)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, grappleLineColor, false)
		vector.FillCircle(screen, float32(b.X), float32(b.Y), 2, grappleLineColor, true)
	}

	img := playerFrame(p, body)
	at := cam.Apply(body.Pos)
	if img == nil {
		drawBox(screen, cam, body.Rect.X, body.Rect.Y, body.Rect.W, body.Rect.H, cfg.UI.TextColor)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(at.X, at.Y)
	if flash := components.Flash.Get(p); flash.Duration > 0 {
		drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
	}
	screen.DrawImage(img, drawOp)
}

// playerFrame picks the walk frame while walking and the first frame
// otherwise.
func playerFrame(p *donburi.Entry, body *gamemath.Body) *ebiten.Image {
	anim := components.Animation.Get(p)
	frames := anim.Frames[body.Facing]
	if len(frames) == 0 {
		return components.Sprite.Get(p).Image
	}
	if body.State == gamemath.StateWalk && anim.Walk != nil {
		return frames[anim.Walk.Frame()%len(frames)]
	}
	return frames[0]
}
