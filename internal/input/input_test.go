package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/camera"
	"scene-editor/internal/gesture"
)

func types(evts []gesture.Event) []gesture.EventType {
	out := make([]gesture.EventType, len(evts))
	for i, e := range evts {
		out[i] = e.Type
	}
	return out
}

func TestFirstFrameIsQuiet(t *testing.T) {
	var tr Translator
	assert.Empty(t, tr.Events(Snapshot{Mouse: camera.P(30, 30), Shift: true}))
}

func TestPressDragRelease(t *testing.T) {
	var tr Translator
	tr.Events(Snapshot{Mouse: camera.P(10, 10)})

	evts := tr.Events(Snapshot{Mouse: camera.P(10, 10), Buttons: [3]bool{true}})
	assert.Equal(t, []gesture.EventType{gesture.MouseDown}, types(evts))
	assert.Equal(t, gesture.ButtonLeft, evts[0].Button)

	evts = tr.Events(Snapshot{Mouse: camera.P(40, 20), Buttons: [3]bool{true}})
	require.Len(t, evts, 1)
	assert.Equal(t, gesture.MouseDrag, evts[0].Type)
	assert.Equal(t, camera.P(40, 20), evts[0].Mouse)

	evts = tr.Events(Snapshot{Mouse: camera.P(45, 20)})
	assert.Equal(t, []gesture.EventType{gesture.MouseDrag, gesture.MouseUp}, types(evts))

	evts = tr.Events(Snapshot{Mouse: camera.P(50, 20)})
	assert.Equal(t, []gesture.EventType{gesture.MouseMove}, types(evts))
}

func TestRightButton(t *testing.T) {
	var tr Translator
	tr.Events(Snapshot{})
	evts := tr.Events(Snapshot{Buttons: [3]bool{false, true}})
	require.Len(t, evts, 1)
	assert.Equal(t, gesture.ButtonRight, evts[0].Button)
}

func TestModifierChangeComesFirst(t *testing.T) {
	var tr Translator
	tr.Events(Snapshot{})
	evts := tr.Events(Snapshot{Shift: true, Buttons: [3]bool{true}, Pressed: []int32{65}})
	require.Equal(t, []gesture.EventType{gesture.Layout, gesture.MouseDown, gesture.KeyDown}, types(evts))
	assert.True(t, evts[0].ModifierKeysChanged())
	assert.True(t, evts[1].Shift)
	assert.Equal(t, int32(65), evts[2].Key)

	evts = tr.Events(Snapshot{Shift: true, Buttons: [3]bool{true}, Released: []int32{65}})
	assert.Equal(t, []gesture.EventType{gesture.KeyUp}, types(evts))
}
