package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// stream is what both decoders return.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// decode opens an embedded wav or ogg file resampled to the context rate.
func (l *AudioLoader) decode(path string) (stream, error) {
	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	s, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect. Decoded bytes are cached
// for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping player that streams from the embedded file.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	s, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(s, s.Length())
	return l.context.NewPlayer(loop)
}
