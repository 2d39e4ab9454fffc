package scene

import (
	"slices"

	"github.com/pkg/errors"

	"scene-editor/internal/camera"
	"scene-editor/internal/selection"
)

// Object is one placed primitive. Scale is the full size per axis and doubles
// as the object's bounding box, centered on Position.
type Object struct {
	ID       selection.ObjectID `yaml:"id"`
	Name     string             `yaml:"name,omitempty"`
	Kind     string             `yaml:"kind"`
	Position [3]float32         `yaml:"position"`
	Scale    [3]float32         `yaml:"scale,omitempty"`
	Color    string             `yaml:"color,omitempty"`
	Parent   selection.ObjectID `yaml:"parent,omitempty"`
	// HandleAsOne makes clicks on any descendant select this object instead.
	HandleAsOne bool `yaml:"handle_as_one,omitempty"`
	// Generated marks proxies created by the editor itself. They are drawn but
	// never stay selected.
	Generated bool `yaml:"generated,omitempty"`
}

// Bounds returns the object's world-space bounding box.
func (o Object) Bounds() camera.Box {
	return camera.BoxFromCenter(o.Position, o.Scale)
}

// Scene holds the viewport camera and the objects of the open scene file.
type Scene struct {
	Camera      camera.Camera
	GridVisible bool

	objects []*Object
	byID    map[selection.ObjectID]*Object
}

// New returns an empty scene with the default camera for a width x height
// viewport. The grid is visible by default.
func New(width, height float32) *Scene {
	return &Scene{
		Camera:      camera.New(width, height),
		GridVisible: true,
		byID:        make(map[selection.ObjectID]*Object),
	}
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Add inserts o. Ids must be unique and non-zero; a parent, when set, must
// already be in the scene.
func (s *Scene) Add(o Object) error {
	if o.ID == selection.None {
		return errors.Errorf("scene: object %q has no id", o.Name)
	}
	if _, ok := s.byID[o.ID]; ok {
		return errors.Errorf("scene: duplicate object id %d", o.ID)
	}
	if o.Parent != selection.None {
		if _, ok := s.byID[o.Parent]; !ok {
			return errors.Errorf("scene: object %d has unknown parent %d", o.ID, o.Parent)
		}
	}
	if o.Kind == "" {
		o.Kind = "cube"
	}
	obj := &o
	s.objects = append(s.objects, obj)
	s.byID[o.ID] = obj
	return nil
}

// Remove deletes id and reparents its children to id's parent.
func (s *Scene) Remove(id selection.ObjectID) bool {
	obj, ok := s.byID[id]
	if !ok {
		return false
	}
	for _, o := range s.objects {
		if o.Parent == id {
			o.Parent = obj.Parent
		}
	}
	delete(s.byID, id)
	s.objects = slices.DeleteFunc(s.objects, func(o *Object) bool { return o.ID == id })
	return true
}

// Object returns a copy of the object with the given id.
func (s *Scene) Object(id selection.ObjectID) (Object, bool) {
	obj, ok := s.byID[id]
	if !ok {
		return Object{}, false
	}
	return *obj, true
}

// Objects returns copies of all objects in insertion order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	for i, o := range s.objects {
		out[i] = *o
	}
	return out
}

// IDs returns every object id in insertion order, generated proxies included.
func (s *Scene) IDs() []selection.ObjectID {
	out := make([]selection.ObjectID, len(s.objects))
	for i, o := range s.objects {
		out[i] = o.ID
	}
	return out
}

// NextID returns an id one above the largest in use.
func (s *Scene) NextID() selection.ObjectID {
	next := selection.ObjectID(1)
	for _, o := range s.objects {
		if o.ID >= next {
			next = o.ID + 1
		}
	}
	return next
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// ObjectsInFrustum returns the ids of all objects whose bounds intersect f,
// in insertion order. Generated proxies are included.
func (s *Scene) ObjectsInFrustum(f camera.Frustum) []selection.ObjectID {
	var out []selection.ObjectID
	for _, o := range s.objects {
		if f.IntersectsBox(o.Bounds()) {
			out = append(out, o.ID)
		}
	}
	return out
}

// PickAtPoint casts a ray from cam through p and returns the nearest hit.
// Generated proxies are never picked.
func (s *Scene) PickAtPoint(cam camera.Camera, p camera.Point) (selection.ObjectID, bool) {
	ray := cam.Ray(p)
	best, found := selection.None, false
	var bestDist float32
	for _, o := range s.objects {
		if o.Generated {
			continue
		}
		dist, hit := ray.IntersectBox(o.Bounds())
		if !hit {
			continue
		}
		if !found || dist < bestDist {
			best, bestDist, found = o.ID, dist, true
		}
	}
	return best, found
}

// SelectionBase returns the outermost ancestor of id flagged HandleAsOne, or
// id itself when there is none.
func (s *Scene) SelectionBase(id selection.ObjectID) selection.ObjectID {
	base := id
	seen := selection.NewSet(id)
	for cur, ok := s.byID[id]; ok && cur.Parent != selection.None; cur, ok = s.byID[cur.Parent] {
		if seen.Has(cur.Parent) {
			break
		}
		seen[cur.Parent] = struct{}{}
		if parent, ok := s.byID[cur.Parent]; ok && parent.HandleAsOne {
			base = parent.ID
		}
	}
	return base
}

// IsGenerated reports whether id is an editor-generated proxy. Unknown ids
// are not generated.
func (s *Scene) IsGenerated(id selection.ObjectID) bool {
	obj, ok := s.byID[id]
	return ok && obj.Generated
}
