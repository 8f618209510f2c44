package systems

import (
	"image/color"

	"github.com/automoto/riftline/assets"
	"github.com/automoto/riftline/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	shadeOp = &ebiten.DrawRectShaderOptions{}
)

// DrawTiles renders the pre-baked tile layers tinted with the dimension
// colour. Without the shader the tint falls back to a colour scale.
func DrawTiles(ecs *ecs.ECS, screen *ebiten.Image) {
	lvl := GetLevel(ecs)
	if lvl == nil || lvl.Image == nil {
		return
	}
	cam := GetCamera(ecs)
	off := cam.Offset()
	tint := CurrentDimension(ecs).Tint.RGBA

	if assets.TintShader != nil {
		w, h := lvl.Image.Bounds().Dx(), lvl.Image.Bounds().Dy()
		shadeOp.GeoM.Reset()
		shadeOp.GeoM.Translate(off.X, off.Y)
		shadeOp.Images[0] = lvl.Image
		shadeOp.Uniforms = map[string]any{
			"Tint": []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255, float32(tint.A) / 255},
		}
		screen.DrawRectShader(w, h, assets.TintShader, shadeOp)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(off.X, off.Y)
	k := float32(tint.A) / 255
	drawOp.ColorScale.Scale(1+(float32(tint.R)/255-1)*k, 1+(float32(tint.G)/255-1)*k, 1+(float32(tint.B)/255-1)*k, 1)
	screen.DrawImage(lvl.Image, drawOp)
}

// drawSprite draws an entry's sprite over its trigger box. alt picks the
// interaction image when the sprite has one.
func drawSprite(screen *ebiten.Image, cam *components.CameraData, entry *donburi.Entry, alt bool) {
	sprite := components.Sprite.Get(entry)
	img := sprite.Image
	if alt && sprite.Alt != nil {
		img = sprite.Alt
	}
	box := objectRect(components.Object.Get(entry).Object)
	if img == nil {
		drawBox(screen, cam, box.X, box.Y, box.W, box.H, color.RGBA{R: 255, G: 0, B: 255, A: 255})
		return
	}

	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-sprite.PivotX*iw, -sprite.PivotY*ih)
	if sprite.FlipX {
		drawOp.GeoM.Scale(-1, 1)
	}
	if sprite.Rotation != 0 {
		drawOp.GeoM.Rotate(sprite.Rotation)
	}
	// pivot lands on the same fraction of the box
	px := float64(box.X) + sprite.PivotX*float64(box.W)
	py := float64(box.Y) + sprite.PivotY*float64(box.H)
	at := cam.Apply(vec(px, py))
	drawOp.GeoM.Translate(at.X, at.Y)
	screen.DrawImage(img, drawOp)
}

func drawBox(screen *ebiten.Image, cam *components.CameraData, x, y, w, h int, clr color.RGBA) {
	at := cam.Apply(vec(float64(x), float64(y)))
	vector.FillRect(screen, float32(at.X), float32(at.Y), float32(w), float32(h), clr, false)
}

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}
