package systems

import (
	"log"
	"sync"

	"github.com/automoto/riftline/assets"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMaster       float64 = 1
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio processes pending SFX and manages music fades
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 {
			StopMusic(e)
		}
	}

	audioData := GetOrCreateAudio(e)
	audioData.Context = globalAudioContext
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	volume *= globalMaster
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping the track at musicPath unless it already plays.
func PlayMusic(e *ecs.ECS, musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath && globalFadeTimer == 0 {
		return
	}
	StopMusic(e)

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

func musicVolume() float64 {
	return cfg.Audio.DefaultMusicVol * globalMaster
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = musicVolume()
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = ""
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played on the next audio update.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetVolume sets the master volume as a percentage of full scale.
func SetVolume(percent float64) {
	v := percent / 100
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalMaster = v
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// Volume returns the master volume as a fraction.
func Volume() float64 {
	return globalMaster
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: cfg.Audio.DefaultMusicVol,
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
