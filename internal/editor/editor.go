// Package editor wires the scene, the host selection engine and the gesture
// manager together and routes viewport events through them.
package editor

import (
	"github.com/sirupsen/logrus"

	"scene-editor/internal/camera"
	"scene-editor/internal/commands"
	"scene-editor/internal/console"
	"scene-editor/internal/editorconfig"
	"scene-editor/internal/gesture"
	"scene-editor/internal/host"
	"scene-editor/internal/keys"
	"scene-editor/internal/scene"
	"scene-editor/internal/selection"
)

// Options configures an Editor. Scene is required.
type Options struct {
	Scene *scene.Scene
	Prefs editorconfig.Prefs
	Log   logrus.FieldLogger
	// ToScreen maps GUI points to viewport pixels. Nil is the identity.
	ToScreen func(camera.Point) camera.Point
}

// Editor owns one viewport's selection state.
type Editor struct {
	Scene     *scene.Scene
	Selection *host.Selection
	Tool      *host.RectSelection
	Gesture   *gesture.Manager
	Controls  *Controls
	Commands  *commands.Registry
	Console   *console.Console
	Keys      *keys.Dispatcher
	ShowStats bool

	prefs   editorconfig.Prefs
	log     logrus.FieldLogger
	pending []string
}

// New builds an editor around opts.Scene.
func New(opts Options) *Editor {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	prefs := opts.Prefs.Normalize()

	e := &Editor{
		Scene:     opts.Scene,
		Selection: host.NewSelection(),
		Controls:  NewControls(),
		Commands:  commands.NewRegistry(),
		Keys:      keys.New(log),
		ShowStats: prefs.ShowStats,
		prefs:     prefs,
		log:       log,
	}
	e.Console = console.New(e.Commands, log)
	e.Tool = host.NewRectSelection(e.Selection, prefs.RectDragDistance, log)
	e.Gesture = gesture.New(gesture.Options{
		Bind:             func() (selection.Bridge, error) { return host.Bind(e.Tool) },
		Scene:            e.Scene,
		Store:            e.Selection,
		Controls:         e.Controls,
		Shortcuts:        e.Keys,
		Log:              log,
		ToScreen:         opts.ToScreen,
		DragThreshold:    prefs.DragThreshold,
		MinRectSize:      prefs.MinRectSize,
		MaxPassiveGrants: prefs.MaxPassiveGrants,
	})
	e.registerCommands()
	e.bindKeys()
	return e
}

// HandleEvent routes one viewport event: the rectangle tool sees it first,
// then the gesture manager. Commands queued by shortcuts run afterwards.
func (e *Editor) HandleEvent(evt *gesture.Event) gesture.Result {
	e.Controls.BeginEvent()
	e.Tool.HandleEvent(evt, e.Controls)
	res := e.Gesture.Update(evt, &e.Scene.Camera)
	if res.Click {
		e.Controls.Repaint()
	}
	if res.Delta != nil && res.Delta.Pushed {
		e.Controls.Repaint()
	}
	for len(e.pending) > 0 {
		name := e.pending[0]
		e.pending = e.pending[1:]
		e.RunCommand(name)
	}
	return res
}

// Focus updates keyboard focus and the control under the pointer from the
// console state. Call once per frame before routing events.
func (e *Editor) Focus(pointerOverConsole bool) {
	keyboard, nearest := 0, 0
	if e.Console.IsOpen() {
		keyboard = console.ControlID
		if pointerOverConsole {
			nearest = console.ControlID
		}
	}
	e.Controls.SetKeyboard(keyboard)
	e.Controls.SetNearest(nearest)
}

// RunCommand sends name as ValidateCommand and, when some control claims it,
// as ExecuteCommand. It reports whether the command ran.
func (e *Editor) RunCommand(name string) bool {
	validate := gesture.Event{Type: gesture.ValidateCommand, Command: name}
	e.HandleEvent(&validate)
	if validate.Type != gesture.Used {
		e.log.WithField("command", name).Debug("command not claimed")
		return false
	}
	execute := gesture.Event{Type: gesture.ExecuteCommand, Command: name}
	e.HandleEvent(&execute)

	var err error
	switch name {
	case gesture.CommandSelectAll:
		err = e.Commands.Run("select --all")
	}
	if err != nil {
		e.log.WithError(err).WithField("command", name).Warn("command failed")
		return false
	}
	e.Controls.Repaint()
	return true
}

// Queue schedules name to run through RunCommand after the current event.
func (e *Editor) Queue(name string) {
	e.pending = append(e.pending, name)
}

// Stats is a snapshot for the overlay.
type Stats struct {
	Objects  int
	Selected int
	State    gesture.State
	Valid    bool
}

// Stats returns the current counters.
func (e *Editor) Stats() Stats {
	return Stats{
		Objects:  e.Scene.Len(),
		Selected: e.Selection.Len(),
		State:    e.Gesture.State(),
		Valid:    e.Gesture.Valid(),
	}
}
