package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Levels exposes the embedded level directory.
func Levels() fs.FS {
	return levelFS
}

// LoadLevel parses a TMX map and renders its visible tile layers into one
// image.
func LoadLevel(tmxPath string) (*leveldata.Level, *ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	level := leveldata.FromMap(levelMap, tmxPath)

	img, err := RenderMap(levelMap)
	if err != nil {
		return nil, nil, err
	}
	return level, img, nil
}

// RenderMap draws every visible tile layer of a map, honouring layer opacity.
func RenderMap(levelMap *tiled.Map) (*ebiten.Image, error) {
	renderer, err := render.NewRendererWithFileSystem(levelMap, levelFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	out := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	for i, layer := range levelMap.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		out.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return out, nil
}

type imageLoader struct {
	mu      sync.Mutex
	catalog map[config.StateID]map[string][]*ebiten.Image
}

var images = &imageLoader{catalog: map[config.StateID]map[string][]*ebiten.Image{}}

// Images returns the sprites of a scene keyed by name. Files named
// "<name>_<n>.png" are gathered into one strip ordered by n; any other PNG
// is a single-frame entry.
func Images(state config.StateID) map[string][]*ebiten.Image {
	images.mu.Lock()
	defer images.mu.Unlock()

	if set, ok := images.catalog[state]; ok {
		return set
	}
	set := loadImageDir(path.Join("images", state.String()))
	images.catalog[state] = set
	return set
}

// Image returns a single level sprite. It panics on unknown names since the
// set is fixed at build time.
func Image(name string) *ebiten.Image {
	frames := Images(config.StateLevel)[name]
	if len(frames) == 0 {
		panic(fmt.Sprintf("Unknown image %q", name))
	}
	return frames[0]
}

type frame struct {
	index int
	img   *ebiten.Image
}

func loadImageDir(dir string) map[string][]*ebiten.Image {
	entries, err := imageFS.ReadDir(dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image directory %s: %v", dir, err))
	}

	strips := map[string][]frame{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".png" {
			continue
		}
		name, index := splitFrameName(strings.TrimSuffix(entry.Name(), ".png"))
		strips[name] = append(strips[name], frame{index: index, img: mustLoadImage(path.Join(dir, entry.Name()))})
	}

	set := make(map[string][]*ebiten.Image, len(strips))
	for name, frames := range strips {
		sort.Slice(frames, func(i, j int) bool { return frames[i].index < frames[j].index })
		imgs := make([]*ebiten.Image, len(frames))
		for i, f := range frames {
			imgs[i] = f.img
		}
		set[name] = imgs
	}
	return set
}

// splitFrameName splits "walk_right_2" into ("walk_right", 2). Names without
// a numeric suffix are returned whole with index 0.
func splitFrameName(stem string) (string, int) {
	i := strings.LastIndexByte(stem, '_')
	if i < 0 {
		return stem, 0
	}
	n, err := strconv.Atoi(stem[i+1:])
	if err != nil {
		return stem, 0
	}
	return stem[:i], n
}

func mustLoadImage(p string) *ebiten.Image {
	imgBytes, err := imageFS.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", p, err))
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", p, err))
	}
	return img
}
