// Package input turns per-frame device snapshots into gesture events.
package input

import (
	"scene-editor/internal/camera"
	"scene-editor/internal/gesture"
)

// Snapshot is the device state polled once per frame.
type Snapshot struct {
	Mouse camera.Point
	// Buttons holds left, right and middle, indexed like gesture.ButtonLeft.
	Buttons   [3]bool
	Shift     bool
	Alt       bool
	ActionKey bool
	// Pressed and Released are the keys that went down or up this frame.
	Pressed  []int32
	Released []int32
}

func (s Snapshot) modifiersEqual(o Snapshot) bool {
	return s.Shift == o.Shift && s.Alt == o.Alt && s.ActionKey == o.ActionKey
}

// Translator diffs consecutive snapshots.
type Translator struct {
	prev    Snapshot
	started bool
}

// Events returns the events for s in delivery order: modifier change, button
// presses, pointer motion, button releases, then keys.
func (t *Translator) Events(s Snapshot) []gesture.Event {
	if !t.started {
		t.prev = Snapshot{Mouse: s.Mouse, Shift: s.Shift, Alt: s.Alt, ActionKey: s.ActionKey}
		t.started = true
	}
	prev := t.prev
	t.prev = Snapshot{Mouse: s.Mouse, Buttons: s.Buttons, Shift: s.Shift, Alt: s.Alt, ActionKey: s.ActionKey}

	var out []gesture.Event
	base := gesture.Event{Shift: s.Shift, Alt: s.Alt, ActionKey: s.ActionKey, Mouse: s.Mouse}

	if !s.modifiersEqual(prev) {
		evt := base
		evt.Type = gesture.Layout
		evt.Command = gesture.CommandModifierKeysChanged
		out = append(out, evt)
	}
	for b := range s.Buttons {
		if s.Buttons[b] && !prev.Buttons[b] {
			evt := base
			evt.Type, evt.Button = gesture.MouseDown, b
			out = append(out, evt)
		}
	}
	if s.Mouse != prev.Mouse {
		evt := base
		evt.Type = gesture.MouseMove
		for b := range s.Buttons {
			if s.Buttons[b] || prev.Buttons[b] {
				evt.Type, evt.Button = gesture.MouseDrag, b
				break
			}
		}
		out = append(out, evt)
	}
	for b := range s.Buttons {
		if !s.Buttons[b] && prev.Buttons[b] {
			evt := base
			evt.Type, evt.Button = gesture.MouseUp, b
			out = append(out, evt)
		}
	}
	for _, k := range s.Pressed {
		evt := base
		evt.Type, evt.Key = gesture.KeyDown, k
		out = append(out, evt)
	}
	for _, k := range s.Released {
		evt := base
		evt.Type, evt.Key = gesture.KeyUp, k
		out = append(out, evt)
	}
	return out
}
