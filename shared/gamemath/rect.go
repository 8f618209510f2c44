package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an integer pixel box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// MidBottom returns the centre of the bottom edge.
func (r Rect) MidBottom() dmath.Vec2 {
	return dmath.Vec2{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Bottom())}
}

// Center returns the centre of the box.
func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Overlaps reports whether the boxes share any area. Touching edges do not
// count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside the box, right and bottom edges
// excluded.
func (r Rect) Contains(p dmath.Vec2) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}

// RectAt builds a box of the given size at a rounded float position.
func RectAt(pos dmath.Vec2, w, h int) Rect {
	return Rect{X: Round(pos.X), Y: Round(pos.Y), W: w, H: h}
}

// Round rounds half to even, the same convention as PixelToTile.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}

// Distance is the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
