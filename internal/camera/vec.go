package camera

import "github.com/chewxy/math32"

// Vec3 is a point or direction in world space (Y-up, like the editor grid).
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns a Vec3 from its components.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromArray converts the [3]float32 layout used by scene objects.
func FromArray(a [3]float32) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Point is a 2D position in viewport space (origin top-left, Y down).
type Point struct {
	X, Y float32
}

// P returns a Point from its components.
func P(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Inf is the sentinel point used before any position has been observed.
// It never compares equal to a real viewport position.
func Inf() Point {
	return Point{X: math32.Inf(1), Y: math32.Inf(1)}
}

// IsInf reports whether both coordinates are positive infinity.
func (p Point) IsInf() bool {
	return math32.IsInf(p.X, 1) && math32.IsInf(p.Y, 1)
}
