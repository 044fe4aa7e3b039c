// Package core provides fundamental types shared by the games and the
// terminal platform. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

// Rect is an axis-aligned box in world units, used for collision.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// MidY returns the vertical midpoint.
func (r Rect) MidY() int {
	return r.Y + r.H/2
}

// Intersects reports whether two rectangles overlap. Touching edges do not
// count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapsX(other) &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapsX reports whether the horizontal extents overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
