// Package gesture drives rectangle selection from raw input events. A Manager
// is fed every event of every frame; it tells clicks from drags, follows the
// host rectangle tool while it holds hot control and runs the frustum
// selection engine or the click picker.
package gesture

import (
	"github.com/chewxy/math32"
	"github.com/sirupsen/logrus"

	"scene-editor/internal/camera"
	"scene-editor/internal/selection"
)

const (
	// DefaultDragThreshold is the displacement (pixels, per axis) that turns a
	// pending click into a drag.
	DefaultDragThreshold = 4
	// DefaultMaxPassiveGrants caps how many consecutive frames may be routed
	// through a passive control id.
	DefaultMaxPassiveGrants = 2
)

// State is the gesture state reported after each Update.
type State int

const (
	IdlePassive State = iota
	ActiveRectDrag
	ActiveClickPending
)

func (s State) String() string {
	switch s {
	case ActiveRectDrag:
		return "rect-drag"
	case ActiveClickPending:
		return "click-pending"
	default:
		return "idle"
	}
}

// Options configures a Manager. Bind, Scene, Store and Controls are required.
type Options struct {
	// Bind locates the host rectangle tool. It is called once by New; an error
	// leaves the manager permanently unavailable.
	Bind      func() (selection.Bridge, error)
	Scene     selection.Scene
	Store     selection.Store
	Controls  Controls
	Shortcuts Shortcuts
	Log       logrus.FieldLogger

	// ToScreen maps GUI points to screen pixels. Nil is the identity.
	ToScreen func(camera.Point) camera.Point

	DragThreshold    float32
	MinRectSize      float32
	MaxPassiveGrants int
}

// Result is what one Update produced.
type Result struct {
	// Click is set when a plain click was detected and picked.
	Click bool
	// Delta is set when the frustum selection engine ran this frame.
	Delta *selection.Delta
}

// Manager is the gesture state machine.
type Manager struct {
	bridge    selection.Bridge
	valid     bool
	engine    *selection.Engine
	picker    *selection.Picker
	controls  Controls
	shortcuts Shortcuts
	log       logrus.FieldLogger
	toScreen  func(camera.Point) camera.Point

	dragThreshold float32
	maxPassive    int

	session *Session
	state   State

	rectClickDown bool
	mouseDragged  bool
	clickOrigin   camera.Point

	passiveFrames int
	frame         uint64
	lastGrant     uint64
	grantRun      int
}

// New binds the host bridge and returns a manager. Binding failure is not an
// error for the caller: the manager then only resets its tracking each frame.
func New(opts Options) *Manager {
	m := &Manager{
		controls:      opts.Controls,
		shortcuts:     opts.Shortcuts,
		log:           opts.Log,
		toScreen:      opts.ToScreen,
		dragThreshold: opts.DragThreshold,
		maxPassive:    opts.MaxPassiveGrants,
	}
	if m.log == nil {
		m.log = logrus.StandardLogger()
	}
	if m.toScreen == nil {
		m.toScreen = func(p camera.Point) camera.Point { return p }
	}
	if m.dragThreshold <= 0 {
		m.dragThreshold = DefaultDragThreshold
	}
	if m.maxPassive <= 0 {
		m.maxPassive = DefaultMaxPassiveGrants
	}

	var err error
	if opts.Bind != nil {
		m.bridge, err = opts.Bind()
	}
	switch {
	case opts.Bind == nil:
		m.log.Warn("rectangle selection unavailable: no host binding")
	case err != nil:
		m.log.WithError(err).Warn("rectangle selection unavailable")
	case m.bridge == nil:
		m.log.Warn("rectangle selection unavailable: host returned no bridge")
	default:
		m.valid = true
		m.engine = selection.NewEngine(m.bridge, opts.Scene, opts.MinRectSize, m.log)
		m.picker = selection.NewPicker(opts.Scene, opts.Store, m.log)
	}
	return m
}

// Valid reports whether the host bridge was bound.
func (m *Manager) Valid() bool { return m.valid }

// State returns the state after the last Update.
func (m *Manager) State() State { return m.state }

// Dragged reports whether the pointer moved past the drag threshold since the
// last MouseDown.
func (m *Manager) Dragged() bool { return m.mouseDragged }

// Session returns the active rectangle session, or nil.
func (m *Manager) Session() *Session { return m.session }

// Tracking returns the drag tracking scalars. Without a session every GUI
// point is the +Inf sentinel.
func (m *Manager) Tracking() Tracking {
	if m.session == nil {
		return sentinelTracking()
	}
	return m.session.Tracking
}

// frameCtx is the scratch state of one Update.
type frameCtx struct {
	evt           *Event
	rectSelecting bool
	hot, rectID   int
	click         bool
}

type transition func(m *Manager, f *frameCtx)

// transitions is keyed by the event type as seen by the rectangle tool.
var transitions = map[EventType]transition{
	MouseDown:       (*Manager).onMouseDown,
	MouseUp:         (*Manager).onMouseUp,
	MouseMove:       (*Manager).onMouseMove,
	MouseDrag:       (*Manager).onMouseDrag,
	Used:            (*Manager).onUsed,
	ValidateCommand: (*Manager).onValidateCommand,
	ExecuteCommand:  (*Manager).onExecuteCommand,
	KeyDown:         (*Manager).onKeyDown,
	KeyUp:           (*Manager).onKeyUp,
}

// Update processes one event. cam is the viewport camera; it may be nil when
// no camera is active, in which case neither the frustum engine nor the click
// picker runs.
func (m *Manager) Update(evt *Event, cam *camera.Camera) Result {
	m.frame++
	if !m.valid {
		m.session = nil
		m.state = IdlePassive
		return Result{}
	}

	var res Result
	f := &frameCtx{evt: evt, rectID: m.bridge.RectSelectionID(), hot: m.controls.HotControl()}
	f.rectSelecting = f.hot == f.rectID
	typ := evt.Type

	if f.rectSelecting {
		if m.session == nil {
			m.session = newSession()
			m.log.Debug("rectangle gesture started")
		}
		if (typ == Used || evt.ModifierKeysChanged()) && m.bridge.Dragging() && cam != nil {
			res.Delta = m.updateRect(evt, *cam)
		}
	} else if m.session != nil {
		m.session = nil
		m.log.Debug("rectangle gesture released")
	}

	m.routePassive(f.hot)

	if h, ok := transitions[typ]; ok {
		h(m, f)
	}

	if f.click {
		m.picker.StripGenerated()
		if cam != nil {
			m.picker.Click(*cam, m.clickOrigin, evt.Modifiers())
			res.Click = true
		} else {
			m.log.Debug("click ignored: no camera")
		}
	}

	switch {
	case f.rectSelecting && m.bridge.Dragging():
		m.state = ActiveRectDrag
	case m.rectClickDown:
		m.state = ActiveClickPending
	default:
		m.state = IdlePassive
	}
	return res
}

func (m *Manager) updateRect(evt *Event, cam camera.Camera) *selection.Delta {
	start, mouse := m.bridge.DragPoints()
	if !m.session.track(start, mouse, m.toScreen) {
		return nil
	}
	d := m.engine.Update(m.session.Candidates, selection.Query{
		Start:            m.session.StartScreen,
		Mouse:            m.session.MouseScreen,
		Camera:           cam,
		Modifiers:        evt.Modifiers(),
		ModifiersChanged: evt.ModifierKeysChanged(),
	})
	return &d
}

// routePassive spends one armed passive frame by moving hot control onto a
// fresh passive id, otherwise restores the hot control read at frame start.
func (m *Manager) routePassive(hot int) {
	if m.passiveFrames > 0 {
		m.passiveFrames--
		id := m.controls.PassiveControlID()
		m.controls.SetHotControl(id)
		m.log.WithField("control", id).Debug("passive control frame")
		return
	}
	m.controls.SetHotControl(hot)
}

// armPassive requests one passive frame unless hot control belongs to an
// unrelated control or the consecutive grant cap is reached.
func (m *Manager) armPassive(f *frameCtx) {
	if f.hot != 0 && f.hot != f.rectID {
		return
	}
	if m.lastGrant != 0 && m.lastGrant+1 >= m.frame {
		m.grantRun++
	} else {
		m.grantRun = 1
	}
	m.lastGrant = m.frame
	if m.grantRun > m.maxPassive {
		m.log.WithField("run", m.grantRun).Warn("passive control frame refused")
		return
	}
	m.passiveFrames = 1
}

func (m *Manager) onMouseDown(f *frameCtx) {
	evt := f.evt
	m.rectClickDown = evt.Button == ButtonLeft && f.rectSelecting
	m.clickOrigin = evt.Mouse
	m.mouseDragged = false
	if !m.rectClickDown {
		return
	}
	if evt.Shift || evt.Alt {
		m.armPassive(f)
	}
	evt.Use()
}

func (m *Manager) onMouseUp(f *frameCtx) {
	evt := f.evt
	if !m.mouseDragged {
		overOther := m.controls.NearestControl() != 0 && evt.Button != ButtonLeft
		focusOther := m.controls.KeyboardControl() != 0 && evt.Button != ButtonMiddle
		if overOther || focusOther {
			return
		}
	}
	m.rectClickDown = false
	m.passiveFrames = 0
}

func (m *Manager) onMouseMove(*frameCtx) {
	m.rectClickDown = false
}

func (m *Manager) onMouseDrag(*frameCtx) {
	m.mouseDragged = true
	m.passiveFrames = 0
}

func (m *Manager) onUsed(f *frameCtx) {
	evt := f.evt
	if !m.mouseDragged {
		delta := evt.Mouse.Sub(m.clickOrigin)
		if math32.Abs(delta.X) > m.dragThreshold || math32.Abs(delta.Y) > m.dragThreshold {
			m.mouseDragged = true
			m.passiveFrames = 0
		}
	}
	if m.mouseDragged || !m.rectClickDown || evt.Button != ButtonLeft || m.bridge.Dragging() {
		m.rectClickDown = false
		return
	}
	m.rectClickDown = false
	f.click = true
	evt.Use()
}

func (m *Manager) onValidateCommand(f *frameCtx) {
	if f.evt.Command != CommandSelectAll {
		return
	}
	f.evt.Use()
}

// onExecuteCommand recognizes SelectAll; the host executes it.
func (m *Manager) onExecuteCommand(*frameCtx) {}

func (m *Manager) onKeyDown(f *frameCtx) {
	if m.shortcuts != nil && m.shortcuts.HandleKeyDown(f.evt) {
		f.evt.Use()
		m.controls.Repaint()
	}
}

func (m *Manager) onKeyUp(f *frameCtx) {
	if m.shortcuts != nil && m.shortcuts.HandleKeyUp(f.evt) {
		f.evt.Use()
		m.controls.Repaint()
	}
}
