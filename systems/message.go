package systems

import (
	"math"
	"strings"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/fonts"
	"github.com/automoto/riftline/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNotes fades tutorial notes in while the player stands on them and
// out otherwise.
func UpdateNotes(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs)
	dt := GetFrame(ecs).DT

	tags.Note.Each(ecs.World, func(entry *donburi.Entry) {
		note := components.Note.Get(entry)
		note.Interacting = ok && Overlaps(p, entry)
		step := cfg.Note.AlphaSpeed * dt
		if note.Interacting {
			note.Alpha = math.Min(255, note.Alpha+step)
		} else {
			note.Alpha = math.Max(0, note.Alpha-step)
		}
	})
}

// DrawNotes draws each note's marker and its text when faded in.
func DrawNotes(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := GetCamera(ecs)
	input := GetOrCreateInput(ecs)
	face := fonts.Small.Get()

	tags.Note.Each(ecs.World, func(entry *donburi.Entry) {
		note := components.Note.Get(entry)
		drawSprite(screen, cam, entry, note.Interacting)
		if note.Alpha <= 0 {
			return
		}

		msg := resolvePlaceholders(note.Text, input.LastInputMethod)
		box := objectRect(components.Object.Get(entry).Object)
		top := cam.Apply(vec(float64(box.X)+float64(box.W)/2, float64(box.Y)-cfg.Note.TextOffset))

		clr := cfg.Note.TextColor
		clr.A = uint8(note.Alpha)
		lines := strings.Split(msg, "\n")
		lineH := face.Metrics().Height.Ceil()
		for i, line := range lines {
			w := text.BoundString(face, line).Dx()
			y := int(top.Y) - (len(lines)-1-i)*lineH
			text.Draw(screen, line, face, int(top.X)-w/2, y, premultiply(clr))
		}
	})
}

// resolvePlaceholders replaces {placeholder} tokens with input-specific labels
func resolvePlaceholders(text string, inputMethod components.InputMethod) string {
	labels := cfg.Note.KeyboardLabels
	if inputMethod == components.InputGamepad {
		labels = cfg.Note.GamepadLabels
	}

	result := text
	for placeholder, label := range labels {
		result = strings.ReplaceAll(result, "{"+placeholder+"}", label)
	}
	return result
}
