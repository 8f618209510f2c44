package components

import (
	"github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores per-scene audio state (singleton component)
type AudioData struct {
	Context     *audio.Context
	MusicVolume float64 // 0.0 - 1.0, before the master volume
	SFXVolume   float64 // 0.0 - 1.0, before the master volume
	PendingSFX  []config.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
