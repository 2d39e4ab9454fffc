package selection

import (
	"maps"
	"slices"
)

// GeneratedFunc reports whether an object is a host-generated proxy that must
// never be selectable.
type GeneratedFunc func(ObjectID) bool

// FilterGenerated removes generated objects from objs. Survivors come out in
// reverse input order. changed is true when anything was removed; in that case
// a new slice is returned, otherwise objs itself.
func FilterGenerated(objs []ObjectID, isGenerated GeneratedFunc) (filtered []ObjectID, changed bool) {
	if isGenerated == nil {
		return objs, false
	}
	found := make([]ObjectID, 0, len(objs))
	for i := len(objs) - 1; i >= 0; i-- {
		if isGenerated(objs[i]) {
			continue
		}
		found = append(found, objs[i])
	}
	if len(found) != len(objs) {
		return found, true
	}
	return objs, false
}

// Set is an unordered set of objects.
type Set map[ObjectID]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...ObjectID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in s.
func (s Set) Has(id ObjectID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []ObjectID {
	return slices.Sorted(maps.Keys(s))
}

// Replace makes s hold exactly ids.
func (s Set) Replace(ids []ObjectID) {
	clear(s)
	for _, id := range ids {
		s[id] = struct{}{}
	}
}
