package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/camera"
	"scene-editor/internal/selection"
)

const sceneYAML = `
camera:
  position: [0, 0, 10]
  target: [0, 0, 0]
  fovy: 90
grid: false
objects:
  - id: 1
    name: rig
    kind: cube
    position: [0, 0, 0]
    handle_as_one: true
  - id: 2
    name: arm
    kind: cube
    position: [0, 0, 2]
    parent: 1
  - id: 3
    name: crate
    kind: sphere
    position: [4, 0, 0]
  - id: 4
    name: arm-proxy
    kind: cube
    position: [0, 0, 4]
    parent: 2
    generated: true
`

func load(t *testing.T) *Scene {
	t.Helper()
	s, err := Parse([]byte(sceneYAML), 100, 100)
	require.NoError(t, err)
	return s
}

func TestParse(t *testing.T) {
	s := load(t)
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.GridVisible)
	assert.Equal(t, camera.V3(0, 0, 10), s.Camera.Position)
	assert.Equal(t, float32(90), s.Camera.FovY)
	assert.Equal(t, float32(100), s.Camera.Width)

	crate, ok := s.Object(3)
	require.True(t, ok)
	assert.Equal(t, "sphere", crate.Kind)
	assert.Equal(t, [3]float32{4, 0, 0}, crate.Position)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, selection.ObjectID(1), New(10, 10).NextID())
	assert.Equal(t, selection.ObjectID(5), load(t).NextID())
}

func TestAddRejectsBadObjects(t *testing.T) {
	s := New(100, 100)
	require.NoError(t, s.Add(Object{ID: 1}))
	assert.Error(t, s.Add(Object{ID: 1}))
	assert.Error(t, s.Add(Object{}))
	assert.Error(t, s.Add(Object{ID: 2, Parent: 9}))

	o, _ := s.Object(1)
	assert.Equal(t, "cube", o.Kind)
}

func TestObjectsInFrustumIncludesGenerated(t *testing.T) {
	s := load(t)
	f := camera.SubFrustum(s.Camera, camera.PointsToRect(camera.P(45, 45), camera.P(55, 55)))
	assert.Equal(t, []selection.ObjectID{1, 2, 4}, s.ObjectsInFrustum(f))

	all := s.ObjectsInFrustum(s.Camera.Frustum())
	assert.Equal(t, []selection.ObjectID{1, 2, 3, 4}, all)
}

func TestPickAtPointNearestNonGenerated(t *testing.T) {
	s := load(t)
	id, ok := s.PickAtPoint(s.Camera, camera.P(50, 50))
	require.True(t, ok)
	assert.Equal(t, selection.ObjectID(2), id)

	id, ok = s.PickAtPoint(s.Camera, camera.P(70, 50))
	require.True(t, ok)
	assert.Equal(t, selection.ObjectID(3), id)

	_, ok = s.PickAtPoint(s.Camera, camera.P(5, 5))
	assert.False(t, ok)
}

func TestSelectionBase(t *testing.T) {
	s := load(t)
	assert.Equal(t, selection.ObjectID(1), s.SelectionBase(4))
	assert.Equal(t, selection.ObjectID(1), s.SelectionBase(2))
	assert.Equal(t, selection.ObjectID(1), s.SelectionBase(1))
	assert.Equal(t, selection.ObjectID(3), s.SelectionBase(3))
	assert.Equal(t, selection.ObjectID(42), s.SelectionBase(42))
}

func TestIsGenerated(t *testing.T) {
	s := load(t)
	assert.True(t, s.IsGenerated(4))
	assert.False(t, s.IsGenerated(2))
	assert.False(t, s.IsGenerated(99))
}

func TestRemoveReparents(t *testing.T) {
	s := load(t)
	require.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	proxy, _ := s.Object(4)
	assert.Equal(t, selection.ObjectID(1), proxy.Parent)
	assert.Equal(t, []selection.ObjectID{1, 3, 4}, s.IDs())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := load(t)
	path := filepath.Join(t.TempDir(), "scenes", "out.yaml")
	require.NoError(t, s.Save(path))

	back, err := Load(path, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, s.Objects(), back.Objects())
	assert.Equal(t, s.Camera, back.Camera)
	assert.False(t, back.GridVisible)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"), 100, 100)
	assert.Error(t, err)
}
