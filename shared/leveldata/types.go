// Package leveldata parses TMX levels into plain data: the collidable tile
// grid, hazard tiles and named object layers. It has no dependencies on
// ebitengine, donburi or resolv.
package leveldata

import (
	"sort"

	"github.com/automoto/riftline/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Tileset tile properties read by the loader.
const (
	PropSolid       = "solid"
	PropSpecialType = "special_type"

	SpecialSpike = "spike"
)

// Tile is one cell of a tile layer that takes part in gameplay.
type Tile struct {
	Pos     gamemath.TilePos
	Rect    gamemath.Rect
	ID      uint32
	Special string
}

// Grid is a sparse tile map keyed by tile position.
type Grid map[gamemath.TilePos]Tile

// Rects returns the boxes of the tiles around center.
func (g Grid) Rects(center gamemath.TilePos, radius int) []gamemath.Rect {
	tiles := gamemath.Neighbors(g, radius, center)
	if len(tiles) == 0 {
		return nil
	}
	out := make([]gamemath.Rect, len(tiles))
	for i, t := range tiles {
		out[i] = t.Rect
	}
	return out
}

// Object is a placed object from an object layer. Name is the object's kind
// (for example "moving_platform" or "end_portal").
type Object struct {
	ID         uint32
	Name       string
	Class      string
	X, Y       float64
	W, H       float64
	Properties tiled.Properties
}

// Rect returns the object's bounding box.
func (o Object) Rect() gamemath.Rect {
	return gamemath.Rect{
		X: gamemath.Round(o.X),
		Y: gamemath.Round(o.Y),
		W: gamemath.Round(o.W),
		H: gamemath.Round(o.H),
	}
}

// Text, Int, Float and Bool read typed object properties. Missing keys return
// the zero value.
func (o Object) Text(key string) string { return o.Properties.GetString(key) }
func (o Object) Int(key string) int { return o.Properties.GetInt(key) }
func (o Object) Float(key string) float64 { return o.Properties.GetFloat(key) }
func (o Object) Bool(key string) bool { return o.Properties.GetBool(key) }

// Has reports whether the property is set at all.
func (o Object) Has(key string) bool { return len(o.Properties.Get(key)) > 0 }

// TilePoint reads a "(x,y)" property as a tile position.
func (o Object) TilePoint(key string) (gamemath.TilePos, error) {
	return gamemath.ParseTilePoint(o.Properties.GetString(key))
}

// Level is a parsed TMX map.
type Level struct {
	Name          string
	Width, Height int // pixels
	TileW, TileH  int

	Tiles        Grid
	SpecialTiles Grid

	layers map[string][]Object
}

// Layer returns the objects of the named object layer. A missing layer is
// empty, not an error.
func (l *Level) Layer(name string) []Object {
	return l.layers[name]
}

// AddObjects appends objects to the named object layer, creating it when
// missing.
func (l *Level) AddObjects(name string, objects ...Object) {
	if l.layers == nil {
		l.layers = make(map[string][]Object)
	}
	l.layers[name] = append(l.layers[name], objects...)
}

// LayerNames lists the object layers present in the map.
func (l *Level) LayerNames() []string {
	names := make([]string, 0, len(l.layers))
	for name := range l.layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
