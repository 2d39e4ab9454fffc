package camera

import "github.com/chewxy/math32"

const (
	defaultFovY = 45
	defaultNear = 0.01
	defaultFar  = 1000
)

// Camera is a perspective viewport camera. Width and Height are the viewport
// size in pixels; screen points handed to Ray and SubFrustum use the same space.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FovY     float32 // vertical field of view in degrees
	Width    float32
	Height   float32
	Near     float32
	Far      float32
}

// New returns the editor's default camera looking at the origin from (10,10,10)
// with a 45° vertical field of view.
func New(width, height float32) Camera {
	return Camera{
		Position: V3(10, 10, 10),
		Target:   V3(0, 0, 0),
		Up:       V3(0, 1, 0),
		FovY:     defaultFovY,
		Width:    width,
		Height:   height,
		Near:     defaultNear,
		Far:      defaultFar,
	}
}

// Basis returns the camera's forward, right and up unit vectors.
func (c Camera) Basis() (forward, right, up Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = V3(0, 1, 0)
	}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

func (c Camera) clip() (near, far float32) {
	near, far = c.Near, c.Far
	if near <= 0 {
		near = defaultNear
	}
	if far <= near {
		far = defaultFar
	}
	return near, far
}

// Direction returns the unnormalized world direction through screen point p.
// A point at the viewport center maps to the forward vector.
func (c Camera) Direction(p Point) Vec3 {
	forward, right, up := c.Basis()
	w, h := c.Width, c.Height
	if w <= 0 || h <= 0 {
		return forward
	}
	fov := c.FovY
	if fov <= 0 {
		fov = defaultFovY
	}
	tanHalf := math32.Tan(fov * math32.Pi / 360)
	ndcX := 2*p.X/w - 1
	ndcY := 1 - 2*p.Y/h
	aspect := w / h
	return forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf))
}

// Ray returns the world ray from the eye through screen point p.
func (c Camera) Ray(p Point) Ray {
	return Ray{Origin: c.Position, Direction: c.Direction(p).Normalize()}
}

// Frustum returns the full view frustum of the camera.
func (c Camera) Frustum() Frustum {
	return SubFrustum(c, Rect{Width: c.Width, Height: c.Height})
}
