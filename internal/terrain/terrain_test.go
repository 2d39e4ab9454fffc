package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/camera"
	"scene-editor/internal/scene"
	"scene-editor/internal/selection"
)

func fixed() Options {
	o := DefaultOptions()
	o.Width, o.Depth = 4, 3
	o.Seed = 7
	return o
}

func TestGenerateLayout(t *testing.T) {
	objs := Generate(fixed(), 10)
	require.Len(t, objs, 1+4*3+1)

	root := objs[0]
	assert.Equal(t, selection.ObjectID(10), root.ID)
	assert.True(t, root.HandleAsOne)
	assert.Equal(t, [3]float32{4, rootHeight, 3}, root.Scale)

	for _, tile := range objs[1 : len(objs)-1] {
		assert.Equal(t, root.ID, tile.Parent)
		assert.False(t, tile.Generated)
		assert.GreaterOrEqual(t, tile.Scale[1], float32(minHeight))
		assert.LessOrEqual(t, tile.Scale[1], float32(3))
		// tiles stand on the root plane
		assert.InDelta(t, tile.Scale[1]*0.5, tile.Position[1], 1e-5)
	}
	assert.Equal(t, [3]float32{-1.5, tile(objs, 0).Position[1], -1}, tile(objs, 0).Position)

	collider := objs[len(objs)-1]
	assert.True(t, collider.Generated)
	assert.Equal(t, selection.ObjectID(23), collider.ID)
}

func tile(objs []scene.Object, i int) scene.Object { return objs[1+i] }

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, Generate(fixed(), 1), Generate(fixed(), 1))

	other := fixed()
	other.Seed = 8
	assert.NotEqual(t, Generate(fixed(), 1), Generate(other, 1))
}

func TestGenerateEmpty(t *testing.T) {
	o := fixed()
	o.Width = 0
	assert.Nil(t, Generate(o, 1))
}

func TestTerrainSelectsAsOne(t *testing.T) {
	s := scene.New(100, 100)
	for _, o := range Generate(fixed(), s.NextID()) {
		require.NoError(t, s.Add(o))
	}
	s.Camera.Position = camera.V3(0, 20, 0.01)

	id, ok := s.PickAtPoint(s.Camera, camera.P(50, 50))
	require.True(t, ok)
	assert.Equal(t, selection.ObjectID(1), s.SelectionBase(id))
	assert.True(t, s.IsGenerated(s.NextID()-1))
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := fractalValueNoise2D(float32(i)*0.37, float32(i)*0.11, 3, 4, 2, 0.5)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
	assert.Equal(t, float32(0), smoothStep(-1))
	assert.Equal(t, float32(1), smoothStep(2))
}
