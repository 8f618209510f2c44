package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader multiplies the map by the dimension colour
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	return err
}
