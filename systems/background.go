package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/riftline/assets"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	bgLineWidth    = 7
	bgLineSpeed    = 1.3
	bgLineEvery    = 100 // dt units
	bgSquareEvery  = 30
	bgSquareSpin   = 0.3 // degrees per dt unit
	bgSquareSpeed  = 0.4
	bgSquareMinLen = 20
	bgSquareMaxLen = 40
)

var bgShade = color.RGBA{R: 6, G: 6, B: 8, A: 255}

// GetBackground returns the background effect state.
func GetBackground(e *ecs.ECS) *components.BackgroundData {
	entry, ok := components.Background.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Background))
	}
	return components.Background.Get(entry)
}

// UpdateBackground sweeps diagonal stripes across the screen and floats
// rotating squares up through the world.
func UpdateBackground(e *ecs.ECS) {
	bg := GetBackground(e)
	dt := GetFrame(e).DT
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	bg.LineTimer += dt
	if bg.LineTimer >= bgLineEvery {
		bg.LineTimer = 0
		bg.Lines = append(bg.Lines, components.BgLine{})
	}
	lines := bg.Lines[:0]
	for _, l := range bg.Lines {
		if stepLine(&l, dt, w, h) {
			lines = append(lines, l)
		}
	}
	bg.Lines = lines

	bg.SquareTimer += dt
	if bg.SquareTimer >= bgSquareEvery {
		bg.SquareTimer = 0
		size := float64(bgSquareMinLen + rand.Intn(bgSquareMaxLen-bgSquareMinLen+1))
		bg.Squares = append(bg.Squares, components.BgSquare{
			Pos:   dmath.Vec2{X: rand.Float64()*4*w - w, Y: h},
			Size:  size,
			Speed: bgSquareSpeed * size / bgSquareMaxLen,
		})
	}
	squares := bg.Squares[:0]
	for _, s := range bg.Squares {
		s.Angle += bgSquareSpin * dt
		s.Pos.Y -= s.Speed * dt
		if s.Pos.Y >= -100 {
			squares = append(squares, s)
		}
	}
	bg.Squares = squares
}

// stepLine moves both ends of a stripe along the screen border, the start
// down the left edge then along the bottom, the end along the top then down
// the right edge.
func stepLine(l *components.BgLine, dt, w, h float64) bool {
	ratio := h / w
	domino := false
	if l.Start.Y < h {
		domino = true
		l.Start.Y += bgLineSpeed * dt * ratio
	} else {
		l.Start.X += bgLineSpeed * dt
	}
	if l.End.X < w {
		l.End.X += bgLineSpeed * dt
	} else {
		l.End.Y += bgLineSpeed * dt * ratio
	}
	return domino || l.Start.X < w || l.Start.Y < h
}

func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(CurrentDimension(e).Background.RGBA)

	bg := GetBackground(e)
	cam := GetCamera(e)
	img := assets.Image("rotating_rect")
	for _, s := range bg.Squares {
		at := cam.Apply(s.Pos)
		op := &ebiten.DrawImageOptions{}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		op.GeoM.Scale(s.Size/float64(iw), s.Size/float64(ih))
		op.GeoM.Rotate(s.Angle * math.Pi / 180)
		op.GeoM.Translate(at.X, at.Y)
		screen.DrawImage(img, op)
	}
	for _, l := range bg.Lines {
		vector.StrokeLine(screen, float32(l.Start.X), float32(l.Start.Y), float32(l.End.X), float32(l.End.Y), bgLineWidth, bgShade, false)
	}
}
