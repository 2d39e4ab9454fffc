package camera

// Plane is n·p + D = 0 with a unit normal. Points with a positive distance lie
// on the side the normal points to.
type Plane struct {
	Normal Vec3
	D      float32
}

// PlaneFromPointNormal returns the plane through p with normal n (normalized).
func PlaneFromPointNormal(p, n Vec3) Plane {
	n = n.Normalize()
	return Plane{Normal: n, D: -n.Dot(p)}
}

// Distance returns the signed distance from the plane to p.
func (pl Plane) Distance(p Vec3) float32 {
	return pl.Normal.Dot(p) + pl.D
}

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is a convex volume bounded by six planes with inward normals.
type Frustum struct {
	Planes [6]Plane
}

// SubFrustum returns the part of the camera frustum seen through the screen
// rectangle r. The four side planes pass through the eye and the rectangle's
// corner rays; near and far planes come from the camera.
func SubFrustum(c Camera, r Rect) Frustum {
	forward, _, _ := c.Basis()
	near, far := c.clip()
	eye := c.Position

	min, max := r.Min(), r.Max()
	tl := c.Direction(Point{X: min.X, Y: min.Y})
	tr := c.Direction(Point{X: max.X, Y: min.Y})
	br := c.Direction(Point{X: max.X, Y: max.Y})
	bl := c.Direction(Point{X: min.X, Y: max.Y})
	center := c.Direction(r.Center())

	side := func(a, b Vec3) Plane {
		n := a.Cross(b)
		if n.Dot(center) < 0 {
			n = n.Scale(-1)
		}
		return PlaneFromPointNormal(eye, n)
	}

	var f Frustum
	f.Planes[PlaneLeft] = side(bl, tl)
	f.Planes[PlaneRight] = side(tr, br)
	f.Planes[PlaneBottom] = side(br, bl)
	f.Planes[PlaneTop] = side(tl, tr)
	f.Planes[PlaneNear] = PlaneFromPointNormal(eye.Add(forward.Scale(near)), forward)
	f.Planes[PlaneFar] = PlaneFromPointNormal(eye.Add(forward.Scale(far)), forward.Scale(-1))
	return f
}

// ContainsPoint reports whether p is inside every plane.
func (f Frustum) ContainsPoint(p Vec3) bool {
	for _, pl := range f.Planes {
		if pl.Distance(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox reports whether b is at least partly inside the frustum.
// The test is conservative: boxes near a frustum corner may report true.
func (f Frustum) IntersectsBox(b Box) bool {
	for _, pl := range f.Planes {
		if pl.Distance(b.positive(pl.Normal)) < 0 {
			return false
		}
	}
	return true
}
