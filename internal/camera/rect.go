package camera

import "github.com/chewxy/math32"

// Rect is an axis-aligned viewport rectangle with non-negative size.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// PointsToRect returns the rectangle spanned by two points. The points may be
// given in any order (drag up-left as well as down-right).
func PointsToRect(a, b Point) Rect {
	minX, maxX := math32.Min(a.X, b.X), math32.Max(a.X, b.X)
	minY, maxY := math32.Min(a.Y, b.Y), math32.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Larger reports whether both sides are strictly longer than min.
func (r Rect) Larger(min float32) bool {
	return r.Width > min && r.Height > min
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}
