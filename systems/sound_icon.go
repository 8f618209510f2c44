package systems

import (
	"image"

	"github.com/automoto/riftline/assets"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSoundIcon mutes or restores the master volume when the icon is
// clicked.
func UpdateSoundIcon(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	if !input.Click {
		return
	}
	at := image.Pt(int(input.Cursor.X), int(input.Cursor.Y))
	if !at.In(soundIconRect()) {
		return
	}
	ToggleSound(ecs)
}

// ToggleSound flips the mute state, remembering the volume to restore.
func ToggleSound(ecs *ecs.ECS) {
	icon := GetOrCreateSoundIcon(ecs)
	icon.On = !icon.On
	if icon.On {
		SetVolume(icon.Last)
	} else {
		icon.Last = Volume() * 100
		SetVolume(0)
	}
	SaveProgress(ecs)
}

func soundIconRect() image.Rectangle {
	x, y, s := int(cfg.UI.SoundIconX), int(cfg.UI.SoundIconY), int(cfg.UI.SoundIconSize)
	return image.Rect(x, y, x+s, y+s)
}

func DrawSoundIcon(ecs *ecs.ECS, screen *ebiten.Image) {
	icon := GetOrCreateSoundIcon(ecs)
	name := "sound_off"
	if icon.On {
		name = "sound_on"
	}
	img := assets.Image(name)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(cfg.UI.SoundIconSize/float64(img.Bounds().Dx()), cfg.UI.SoundIconSize/float64(img.Bounds().Dy()))
	drawOp.GeoM.Translate(cfg.UI.SoundIconX, cfg.UI.SoundIconY)
	screen.DrawImage(img, drawOp)
}

// GetOrCreateSoundIcon returns the mute toggle, starting from the current
// volume.
func GetOrCreateSoundIcon(ecs *ecs.ECS) *components.SoundIconData {
	entry, ok := components.SoundIcon.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.SoundIcon))
		last := Volume() * 100
		if last == 0 {
			last = 100
		}
		components.SoundIcon.SetValue(entry, components.SoundIconData{On: Volume() > 0, Last: last})
	}
	return components.SoundIcon.Get(entry)
}
