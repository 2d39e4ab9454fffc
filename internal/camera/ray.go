package camera

import "github.com/chewxy/math32"

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectBox returns the distance to the first hit with b using the slab
// method. A ray starting inside the box hits at t = 0.
func (r Ray) IntersectBox(b Box) (t float32, hit bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}
