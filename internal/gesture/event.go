package gesture

import (
	"scene-editor/internal/camera"
	"scene-editor/internal/selection"
)

// EventType is the kind of a per-frame input event.
type EventType int

const (
	Ignore EventType = iota
	MouseDown
	MouseUp
	MouseMove
	MouseDrag
	KeyDown
	KeyUp
	ValidateCommand
	ExecuteCommand
	Layout
	Repaint
	// Used marks an event already consumed by some control this frame.
	Used
)

var eventTypeNames = [...]string{
	Ignore:          "Ignore",
	MouseDown:       "MouseDown",
	MouseUp:         "MouseUp",
	MouseMove:       "MouseMove",
	MouseDrag:       "MouseDrag",
	KeyDown:         "KeyDown",
	KeyUp:           "KeyUp",
	ValidateCommand: "ValidateCommand",
	ExecuteCommand:  "ExecuteCommand",
	Layout:          "Layout",
	Repaint:         "Repaint",
	Used:            "Used",
}

func (t EventType) String() string {
	if int(t) >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Command names carried by Event.Command.
const (
	CommandSelectAll           = "SelectAll"
	CommandModifierKeysChanged = "ModifierKeysChanged"
)

// Mouse buttons.
const (
	ButtonLeft   = 0
	ButtonRight  = 1
	ButtonMiddle = 2
)

// Event is one input event delivered to the editor. Controls that handle it
// call Use, after which every later control sees Type == Used.
type Event struct {
	Type      EventType
	Button    int
	Shift     bool
	Alt       bool
	ActionKey bool
	Mouse     camera.Point
	Key       int32
	Command   string
}

// Use consumes the event.
func (e *Event) Use() {
	e.Type = Used
}

// Modifiers returns the event's modifier state.
func (e *Event) Modifiers() selection.Modifiers {
	return selection.Modifiers{Shift: e.Shift, Alt: e.Alt, ActionKey: e.ActionKey}
}

// ModifierKeysChanged reports whether e is the modifier change notification.
func (e *Event) ModifierKeysChanged() bool {
	return e.Command == CommandModifierKeysChanged
}

// Controls is the host's control bookkeeping: the hot control token, a fresh
// passive id allocator, the control under the pointer and keyboard focus.
type Controls interface {
	HotControl() int
	SetHotControl(id int)
	PassiveControlID() int
	NearestControl() int
	KeyboardControl() int
	Repaint()
}

// Shortcuts dispatches scene keyboard shortcuts. Both methods report whether
// the key was handled.
type Shortcuts interface {
	HandleKeyDown(evt *Event) bool
	HandleKeyUp(evt *Event) bool
}
