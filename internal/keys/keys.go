// Package keys dispatches viewport keyboard shortcuts.
package keys

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"scene-editor/internal/gesture"
)

// Key codes. Values match raylib's keyboard keys so viewport events can carry
// them unchanged.
const (
	KeyA      int32 = 65
	KeyG      int32 = 71
	KeyI      int32 = 73
	KeyEscape int32 = 256
)

// Chord is a key plus whether the action key (Ctrl or Super) is held.
type Chord struct {
	Key       int32
	ActionKey bool
}

func (c Chord) String() string {
	name := keyName(c.Key)
	if c.ActionKey {
		return "Action+" + name
	}
	return name
}

func keyName(k int32) string {
	switch {
	case k == KeyEscape:
		return "Escape"
	case k >= 'A' && k <= 'Z':
		return string(rune(k))
	default:
		return fmt.Sprintf("key(%d)", k)
	}
}

type binding struct {
	name string
	run  func() error
}

// Dispatcher maps chords to named actions. It implements gesture.Shortcuts.
type Dispatcher struct {
	bindings map[Chord]binding
	log      logrus.FieldLogger
}

// New returns a dispatcher with no bindings.
func New(log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{bindings: make(map[Chord]binding), log: log}
}

// Bind maps c to run, replacing any earlier binding. name shows up in logs
// and in Help.
func (d *Dispatcher) Bind(c Chord, name string, run func() error) {
	d.bindings[c] = binding{name: name, run: run}
}

// HandleKeyDown runs the action bound to the event's chord. A failing action
// is logged and still counts as handled.
func (d *Dispatcher) HandleKeyDown(evt *gesture.Event) bool {
	c := Chord{Key: evt.Key, ActionKey: evt.ActionKey}
	b, ok := d.bindings[c]
	if !ok {
		return false
	}
	entry := d.log.WithFields(logrus.Fields{"key": c, "action": b.name})
	if err := b.run(); err != nil {
		entry.WithError(err).Warn("shortcut failed")
	} else {
		entry.Debug("shortcut")
	}
	return true
}

// HandleKeyUp reports whether the event's chord is bound, so the release of a
// handled key is consumed too.
func (d *Dispatcher) HandleKeyUp(evt *gesture.Event) bool {
	_, ok := d.bindings[Chord{Key: evt.Key, ActionKey: evt.ActionKey}]
	return ok
}

// Help returns one "chord: action" line per binding, sorted.
func (d *Dispatcher) Help() []string {
	out := make([]string, 0, len(d.bindings))
	for c, b := range d.bindings {
		out = append(out, c.String()+": "+b.name)
	}
	slices.Sort(out)
	return out
}

var _ gesture.Shortcuts = (*Dispatcher)(nil)
