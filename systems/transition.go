package systems

import (
	"image/color"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetTransition returns the level fade.
func GetTransition(e *ecs.ECS) *components.FadeData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Transition))
		components.Transition.SetValue(entry, components.NewFade(true, cfg.Transition.FadeSpeed))
	}
	return components.Transition.Get(entry)
}

// UpdateTransition advances the fade and turns terminal conditions into the
// next state once the screen is dark.
func UpdateTransition(e *ecs.ECS) {
	fade := GetTransition(e)
	fade.Update(GetFrame(e).DT)

	lvl := GetLevel(e)
	if lvl == nil {
		return
	}
	if p, ok := playerEntry(e); ok && !components.Player.Get(p).Alive {
		EndLevel(e, cfg.StateLevel, map[string]any{"retry": true, "cause": string(deathCause(p))})
	}
	if !lvl.Ending {
		return
	}
	fade.FadeIn = false
	if fade.Event {
		lvl.Finish()
	}
}

func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	fade := GetTransition(e)
	a := fade.AlphaByte()
	if a == 0 {
		return
	}
	c := cfg.Transition.Color
	// vector colors are premultiplied
	k := float64(a) / 255
	clr := color.RGBA{R: uint8(float64(c.R) * k), G: uint8(float64(c.G) * k), B: uint8(float64(c.B) * k), A: a}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), clr, false)
}
