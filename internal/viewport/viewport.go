package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/camera"
	"scene-editor/internal/editor"
	"scene-editor/internal/gesture"
	"scene-editor/internal/input"
)

// Viewport feeds raylib input into an editor and draws its scene.
type Viewport struct {
	ed       *editor.Editor
	input    input.Translator
	orbiting bool
}

// New returns a viewport for ed.
func New(ed *editor.Editor) *Viewport {
	return &Viewport{ed: ed}
}

// Update runs once per frame: resizes the camera to the window, feeds the
// console, orbits while the right button is held and routes this frame's
// events through the editor.
func (v *Viewport) Update() {
	cam := &v.ed.Scene.Camera
	cam.Width = float32(rl.GetScreenWidth())
	cam.Height = float32(rl.GetScreenHeight())

	typing := updateConsole(v.ed.Console)
	mouse := rl.GetMousePosition()
	v.ed.Focus(mouse.Y >= float32(consoleTop(v.ed.Console)))

	snap := poll()
	orbiting := snap.Buttons[gesture.ButtonRight]
	// free-camera movement keys are not shortcuts
	if typing || orbiting {
		snap.Pressed, snap.Released = nil, nil
	}
	v.orbit(cam, orbiting)

	for _, evt := range v.input.Events(snap) {
		v.ed.HandleEvent(&evt)
	}
}

// DrawConsole draws the console over everything else when it is open.
func (v *Viewport) DrawConsole(lines []string) {
	drawConsole(v.ed.Console, lines)
}

// orbit drives raylib's free camera while held, capturing the cursor.
func (v *Viewport) orbit(cam *camera.Camera, held bool) {
	switch {
	case held && !v.orbiting:
		rl.DisableCursor()
	case !held && v.orbiting:
		rl.EnableCursor()
	}
	v.orbiting = held
	if !held {
		return
	}
	rc := toRaylib(*cam)
	rl.UpdateCamera(&rc, rl.CameraFree)
	cam.Position = fromVector(rc.Position)
	cam.Target = fromVector(rc.Target)
	cam.Up = fromVector(rc.Up)
}

func poll() input.Snapshot {
	mouse := rl.GetMousePosition()
	s := input.Snapshot{
		Mouse: camera.P(mouse.X, mouse.Y),
		Buttons: [3]bool{
			rl.IsMouseButtonDown(rl.MouseLeftButton),
			rl.IsMouseButtonDown(rl.MouseRightButton),
			rl.IsMouseButtonDown(rl.MouseMiddleButton),
		},
		Shift:     rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Alt:       rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		ActionKey: rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper),
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		s.Pressed = append(s.Pressed, k)
	}
	for _, k := range watchedKeys {
		if rl.IsKeyReleased(k) {
			s.Released = append(s.Released, k)
		}
	}
	return s
}

// watchedKeys are checked for release each frame.
var watchedKeys = []int32{rl.KeyEscape, rl.KeyA, rl.KeyG, rl.KeyI}

func toRaylib(c camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector(c.Position),
		Target:     toVector(c.Target),
		Up:         toVector(c.Up),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}

func toVector(v camera.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

func fromVector(v rl.Vector3) camera.Vec3 {
	return camera.V3(v.X, v.Y, v.Z)
}
