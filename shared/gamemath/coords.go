// Package gamemath holds the pure movement, collision and grapple math used by
// the game systems. It has no dependencies on ebitengine or the ECS world.
package gamemath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	dmath "github.com/yohamta/donburi/features/math"
)

// TilePos is an integer grid cell.
type TilePos struct {
	X, Y int
}

// PixelToTile maps a pixel position to the nearest tile. Halves round to even,
// so 8/16 lands on tile 0 and 24/16 on tile 2.
func PixelToTile(pos dmath.Vec2, tileW, tileH float64) TilePos {
	return TilePos{
		X: int(math.RoundToEven(pos.X / tileW)),
		Y: int(math.RoundToEven(pos.Y / tileH)),
	}
}

// TileToPixel maps a tile to the pixel position of its top-left corner.
func TileToPixel(tile TilePos, tileW, tileH float64) dmath.Vec2 {
	return dmath.Vec2{X: float64(tile.X) * tileW, Y: float64(tile.Y) * tileH}
}

// ParseTilePoint parses the "(x,y)" form used by tilemap object properties.
func ParseTilePoint(s string) (TilePos, error) {
	trimmed := strings.NewReplacer("(", "", ")", "", " ", "").Replace(s)
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return TilePos{}, fmt.Errorf("parse tile point %q: want two components", s)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return TilePos{}, fmt.Errorf("parse tile point %q: %w", s, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return TilePos{}, fmt.Errorf("parse tile point %q: %w", s, err)
	}
	return TilePos{X: x, Y: y}, nil
}

// Neighbors returns every grid entry within radius cells of center, in a
// square. Cells with no entry are skipped.
func Neighbors[T any](grid map[TilePos]T, radius int, center TilePos) []T {
	if radius < 0 || len(grid) == 0 {
		return nil
	}
	out := make([]T, 0, 8)
	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			if v, ok := grid[TilePos{X: x, Y: y}]; ok {
				out = append(out, v)
			}
		}
	}
	return out
}
