package camera

// Box is an axis-aligned bounding box in world space.
type Box struct {
	Min, Max Vec3
}

// BoxFromCenter returns the AABB for an object centered at position with the
// given full size per axis. A zero size on an axis is treated as 1, so an
// unscaled object still has a unit footprint.
func BoxFromCenter(position, size [3]float32) Box {
	s := size
	for i := range s {
		if s[i] == 0 {
			s[i] = 1
		}
		if s[i] < 0 {
			s[i] = -s[i]
		}
	}
	half := Vec3{s[0] * 0.5, s[1] * 0.5, s[2] * 0.5}
	c := FromArray(position)
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// Center returns the middle of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent per axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// positive returns the box corner furthest along n.
func (b Box) positive(n Vec3) Vec3 {
	p := b.Min
	if n.X >= 0 {
		p.X = b.Max.X
	}
	if n.Y >= 0 {
		p.Y = b.Max.Y
	}
	if n.Z >= 0 {
		p.Z = b.Max.Z
	}
	return p
}
