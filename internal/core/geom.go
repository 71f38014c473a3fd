// Package core holds what the game and its front ends share: the character
// screen, colors, input actions, runtime settings and integer geometry.
// It imports nothing outside the standard library.
package core

// Rect is a half-open box [X, X+W) x [Y, Y+H). The simulation measures it
// in field pixels, the screen in character cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first x past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first y past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and o share at least one point. Boxes that
// only touch along an edge do not.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union is the bounding box of r and o. A vehicle's swept span is the
// union of where it was and where it is.
func (r Rect) Union(o Rect) Rect {
	x, y := min(r.X, o.X), min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
