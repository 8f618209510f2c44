package factory

import "github.com/hajimehoshi/ebiten/v2"

// Sprites is a scene's image catalogue keyed by name. A nil catalogue is
// valid and yields no images, so entities fall back to plain boxes.
type Sprites map[string][]*ebiten.Image

// Get returns the first frame of name, or nil.
func (s Sprites) Get(name string) *ebiten.Image {
	if frames := s[name]; len(frames) > 0 {
		return frames[0]
	}
	return nil
}

// Strip returns every frame of name.
func (s Sprites) Strip(name string) []*ebiten.Image {
	return s[name]
}
