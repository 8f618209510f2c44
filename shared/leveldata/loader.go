package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/riftline/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS for tooling.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, tmxPath), nil
}

// FromMap converts an already parsed map. Every tile layer contributes: tiles
// whose tileset entry is marked solid become colliders, tiles with a special
// type go to SpecialTiles, everything else is decoration.
func FromMap(levelMap *tiled.Map, name string) *Level {
	level := &Level{
		Name:         name,
		Width:        levelMap.Width * levelMap.TileWidth,
		Height:       levelMap.Height * levelMap.TileHeight,
		TileW:        levelMap.TileWidth,
		TileH:        levelMap.TileHeight,
		Tiles:        make(Grid),
		SpecialTiles: make(Grid),
		layers:       make(map[string][]Object),
	}

	for _, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() || tile.Tileset == nil {
					continue
				}
				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					continue
				}

				pos := gamemath.TilePos{X: x, Y: y}
				t := Tile{
					Pos: pos,
					Rect: gamemath.Rect{
						X: x * level.TileW,
						Y: y * level.TileH,
						W: level.TileW,
						H: level.TileH,
					},
					ID:      tile.ID,
					Special: tilesetTile.Properties.GetString(PropSpecialType),
				}
				if tilesetTile.Properties.GetBool(PropSolid) {
					level.Tiles[pos] = t
				}
				if t.Special != "" {
					level.SpecialTiles[pos] = t
				}
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		objects := make([]Object, 0, len(og.Objects))
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // older TMX files use type=
			}
			objects = append(objects, Object{
				ID:         o.ID,
				Name:       o.Name,
				Class:      class,
				X:          o.X,
				Y:          o.Y,
				W:          o.Width,
				H:          o.Height,
				Properties: o.Properties,
			})
		}
		level.AddObjects(og.Name, objects...)
	}

	return level
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
