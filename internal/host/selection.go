// Package host is the editor's own selection engine: the global selection
// store and the rectangle-select tool that owns hot control while the user
// drags in the viewport. The gesture package reaches the tool only through
// the selection.Bridge returned by Bind.
package host

import (
	"slices"

	"scene-editor/internal/selection"
)

// Selection is the global, ordered set of selected objects.
type Selection struct {
	ids      []selection.ObjectID
	active   selection.ObjectID
	onChange func(ids []selection.ObjectID)
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// OnChange registers fn to be called after every write.
func (s *Selection) OnChange(fn func(ids []selection.ObjectID)) {
	s.onChange = fn
}

// IDs returns a copy of the selected ids in selection order.
func (s *Selection) IDs() []selection.ObjectID {
	return slices.Clone(s.ids)
}

// SetIDs replaces the selection. Duplicates and selection.None are dropped.
// The active object is kept when still selected, otherwise the first id
// becomes active.
func (s *Selection) SetIDs(ids []selection.ObjectID) {
	seen := make(selection.Set, len(ids))
	out := make([]selection.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id == selection.None || seen.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	s.ids = out
	if !seen.Has(s.active) {
		s.active = selection.None
		if len(out) > 0 {
			s.active = out[0]
		}
	}
	s.changed()
}

// SetActive selects exactly id, or clears the selection when ok is false.
func (s *Selection) SetActive(id selection.ObjectID, ok bool) {
	if !ok || id == selection.None {
		s.ids, s.active = nil, selection.None
	} else {
		s.ids, s.active = []selection.ObjectID{id}, id
	}
	s.changed()
}

// Active returns the active object.
func (s *Selection) Active() (selection.ObjectID, bool) {
	return s.active, s.active != selection.None
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id selection.ObjectID) bool {
	return slices.Contains(s.ids, id)
}

// Len returns the number of selected objects.
func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) changed() {
	if s.onChange != nil {
		s.onChange(s.IDs())
	}
}
