package editor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/camera"
	"scene-editor/internal/console"
	"scene-editor/internal/editorconfig"
	"scene-editor/internal/gesture"
	"scene-editor/internal/host"
	"scene-editor/internal/keys"
	"scene-editor/internal/logger"
	"scene-editor/internal/scene"
	"scene-editor/internal/selection"
)

// The camera looks down -Z from (0,0,10) with a 90° field of view: at z=0 one
// world unit spans 5 pixels of the 100x100 viewport, centered at (50,50).
const testScene = `
camera:
  position: [0, 0, 10]
  target: [0, 0, 0]
  fovy: 90
objects:
  - {id: 1, name: center, kind: cube, position: [0, 0, 0]}
  - {id: 2, name: right, kind: cube, position: [4, 0, 0]}
  - {id: 3, name: left, kind: cube, position: [-4, 0, 0]}
  - {id: 4, name: top-proxy, kind: cube, position: [0, 4, 0], generated: true}
  - {id: 5, name: right-proxy, kind: cube, position: [4, 0, -2], generated: true}
`

func newEditor(t *testing.T) (*Editor, *logger.Logger) {
	t.Helper()
	s, err := scene.Parse([]byte(testScene), 100, 100)
	require.NoError(t, err)
	log := logger.NewMemory("debug")
	return New(Options{Scene: s, Prefs: editorconfig.Default(), Log: log}), log
}

func ids(v ...selection.ObjectID) []selection.ObjectID { return v }

type mods struct{ shift, alt, action bool }

func (e *Editor) send(typ gesture.EventType, x, y float32, m mods) gesture.Result {
	evt := gesture.Event{
		Type:      typ,
		Button:    gesture.ButtonLeft,
		Shift:     m.shift,
		Alt:       m.alt,
		ActionKey: m.action,
		Mouse:     camera.P(x, y),
	}
	return e.HandleEvent(&evt)
}

func (e *Editor) drag(from, to camera.Point, m mods) {
	e.send(gesture.MouseDown, from.X, from.Y, m)
	e.send(gesture.MouseDrag, to.X, to.Y, m)
	e.send(gesture.MouseUp, to.X, to.Y, m)
}

func (e *Editor) click(x, y float32, m mods) gesture.Result {
	e.send(gesture.MouseDown, x, y, m)
	return e.send(gesture.MouseUp, x, y, m)
}

func TestDragSelectsObjectsInsideRect(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(3))

	e.send(gesture.MouseDown, 40, 40, mods{})
	assert.Equal(t, host.RectSelectionID, e.Controls.HotControl())

	res := e.send(gesture.MouseDrag, 80, 60, mods{})
	require.NotNil(t, res.Delta)
	assert.True(t, res.Delta.Pushed)
	assert.Equal(t, gesture.ActiveRectDrag, e.Gesture.State())
	assert.ElementsMatch(t, ids(1, 2), e.Selection.IDs())
	assert.Equal(t, ids(3), e.Tool.State().SelectionStart)

	res = e.send(gesture.MouseUp, 80, 60, mods{})
	assert.False(t, res.Click)
	assert.Zero(t, e.Controls.HotControl())
	assert.Nil(t, e.Gesture.Session())
	assert.Equal(t, gesture.IdlePassive, e.Gesture.State())
	assert.ElementsMatch(t, ids(1, 2), e.Selection.IDs())
}

func TestDragNeverKeepsGeneratedObjects(t *testing.T) {
	e, _ := newEditor(t)
	e.drag(camera.P(40, 20), camera.P(80, 60), mods{})
	assert.ElementsMatch(t, ids(1, 2), e.Selection.IDs())
}

func TestShiftDragAddsToSelection(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(3))
	e.drag(camera.P(40, 40), camera.P(80, 60), mods{shift: true})
	assert.ElementsMatch(t, ids(1, 2, 3), e.Selection.IDs())
	assert.False(t, e.Tool.Dragging())
	assert.Empty(t, e.Tool.State().LastSelection)
}

func TestActionDragRemovesFromSelection(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(1, 2, 3))
	e.drag(camera.P(60, 40), camera.P(80, 60), mods{action: true})
	assert.ElementsMatch(t, ids(1, 3), e.Selection.IDs())
}

func TestShiftPressGrantsOnePassiveFrame(t *testing.T) {
	e, _ := newEditor(t)
	e.send(gesture.MouseDown, 40, 40, mods{shift: true})
	e.send(gesture.MouseDrag, 80, 60, mods{shift: true})
	assert.GreaterOrEqual(t, e.Controls.HotControl(), FirstPassiveID)

	// the next event gets the rectangle tool back
	e.send(gesture.MouseDrag, 82, 60, mods{shift: true})
	assert.Equal(t, host.RectSelectionID, e.Controls.HotControl())
	e.send(gesture.MouseUp, 82, 60, mods{shift: true})
	assert.Zero(t, e.Controls.HotControl())
}

func TestClickPicksObject(t *testing.T) {
	e, _ := newEditor(t)
	res := e.click(50, 50, mods{})
	assert.True(t, res.Click)
	assert.Equal(t, ids(1), e.Selection.IDs())
	assert.True(t, e.Controls.TakeRepaint())
}

func TestClickEmptyClearsSelection(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(1, 2))
	res := e.click(5, 5, mods{})
	assert.True(t, res.Click)
	assert.Empty(t, e.Selection.IDs())
	_, ok := e.Selection.Active()
	assert.False(t, ok)
}

func TestActionClickRemovesSelected(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(1, 2, 3))
	e.click(70, 50, mods{action: true})
	assert.Equal(t, ids(1, 3), e.Selection.IDs())
}

func TestShiftClickAdds(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(3))
	e.click(50, 50, mods{shift: true})
	assert.Equal(t, ids(3, 1), e.Selection.IDs())
}

func TestClickOverOtherControlIsIgnored(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(2))
	e.Controls.SetNearest(42)
	res := e.click(50, 50, mods{})
	assert.False(t, res.Click)
	assert.Equal(t, ids(2), e.Selection.IDs())
}

func TestSelectAllCommand(t *testing.T) {
	e, _ := newEditor(t)
	require.True(t, e.RunCommand(gesture.CommandSelectAll))
	assert.Equal(t, ids(1, 2, 3), e.Selection.IDs())
	assert.False(t, e.RunCommand("Duplicate"))
}

func TestShortcuts(t *testing.T) {
	e, _ := newEditor(t)
	key := func(k int32, action bool) *gesture.Event {
		evt := &gesture.Event{Type: gesture.KeyDown, Key: k, ActionKey: action}
		e.HandleEvent(evt)
		return evt
	}

	evt := key(keys.KeyA, true)
	assert.Equal(t, gesture.Used, evt.Type)
	assert.Equal(t, ids(1, 2, 3), e.Selection.IDs())

	e.Selection.SetIDs(ids(2))
	key(keys.KeyI, true)
	assert.Equal(t, ids(1, 3), e.Selection.IDs())

	key(keys.KeyEscape, false)
	assert.Empty(t, e.Selection.IDs())

	key(keys.KeyG, false)
	assert.False(t, e.Scene.GridVisible)
	key(keys.KeyG, false)
	assert.True(t, e.Scene.GridVisible)

	evt = key(keys.KeyI, false)
	assert.Equal(t, gesture.KeyDown, evt.Type)
}

func TestCommands(t *testing.T) {
	e, log := newEditor(t)
	e.Selection.SetIDs(ids(1))

	require.NoError(t, e.Commands.Run("stats --show"))
	assert.True(t, e.ShowStats)
	require.NoError(t, e.Commands.Run("select --list"))
	assert.Contains(t, log.Lines()[len(log.Lines())-1], "name=center")

	assert.Error(t, e.Commands.Run("select --all --none"))
	assert.Error(t, e.Commands.Run("grid"))

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, e.Commands.Run("scene --save --path "+path))
	back, err := scene.Load(path, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, e.Scene.Len(), back.Len())
}

func TestStats(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(1, 2))
	assert.Equal(t, Stats{Objects: 5, Selected: 2, State: gesture.IdlePassive, Valid: true}, e.Stats())
}

func TestControlsPassiveRevert(t *testing.T) {
	c := NewControls()
	c.SetHotControl(host.RectSelectionID)
	id := c.PassiveControlID()
	assert.Equal(t, FirstPassiveID, id)
	assert.Equal(t, FirstPassiveID+1, c.PassiveControlID())

	c.SetHotControl(id)
	assert.Equal(t, id, c.HotControl())
	c.BeginEvent()
	assert.Equal(t, host.RectSelectionID, c.HotControl())

	c.SetHotControl(0)
	c.BeginEvent()
	assert.Zero(t, c.HotControl())
}

func TestConsoleBlocksViewportPress(t *testing.T) {
	e, _ := newEditor(t)
	e.Selection.SetIDs(ids(2))
	e.Console.Toggle()
	e.Focus(true)
	assert.Equal(t, console.ControlID, e.Controls.KeyboardControl())

	res := e.click(50, 50, mods{})
	assert.False(t, res.Click)
	assert.Zero(t, e.Controls.HotControl())
	assert.Equal(t, ids(2), e.Selection.IDs())

	// pointer back over the viewport: clicks work while the console keeps focus
	e.Focus(false)
	res = e.click(50, 50, mods{})
	assert.True(t, res.Click)
	assert.Equal(t, ids(1), e.Selection.IDs())

	e.Console.Type("grid --hide")
	require.NoError(t, e.Console.Submit())
	assert.False(t, e.Scene.GridVisible)
}

func TestTerrainCommand(t *testing.T) {
	e, _ := newEditor(t)
	require.NoError(t, e.Commands.Run("terrain --width 2 --depth 2 --seed 3"))
	assert.Equal(t, 5+1+4+1, e.Scene.Len())
	assert.True(t, e.Scene.IsGenerated(11))
	assert.Equal(t, selection.ObjectID(6), e.Scene.SelectionBase(8))
	assert.Error(t, e.Commands.Run("terrain --width 0"))

	require.True(t, e.RunCommand(gesture.CommandSelectAll))
	assert.NotContains(t, e.Selection.IDs(), selection.ObjectID(11))
	assert.Len(t, e.Selection.IDs(), 3+1+4)
}
