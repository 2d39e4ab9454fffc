// Package selection holds the rectangle-selection core: merge modes, the
// generated-object filter, the frustum selection engine and the click picker.
// Host services (selection storage, spatial queries) are reached through the
// small interfaces declared here.
package selection

// ObjectID identifies a scene object. It doubles as the instance id used by
// the global selection store.
type ObjectID int

// None is the zero ObjectID; scene objects never use it.
const None ObjectID = 0

// Mode is how a computed object set is merged into the selection.
type Mode int

const (
	Replace Mode = iota
	Additive
	Subtractive
)

func (m Mode) String() string {
	switch m {
	case Additive:
		return "additive"
	case Subtractive:
		return "subtractive"
	default:
		return "replace"
	}
}

// Modifiers is the keyboard modifier state of the current event. ActionKey is
// Control on Windows/Linux and Command on macOS.
type Modifiers struct {
	Shift     bool
	Alt       bool
	ActionKey bool
}

// Resolve maps modifier state to a merge mode: shift alone is Additive, the
// action key alone is Subtractive, everything else is Replace.
func Resolve(shift, actionKey, alt bool) Mode {
	switch {
	case shift && !actionKey && !alt:
		return Additive
	case !shift && actionKey && !alt:
		return Subtractive
	}
	return Replace
}

// Mode resolves m with Resolve.
func (m Modifiers) Mode() Mode {
	return Resolve(m.Shift, m.ActionKey, m.Alt)
}
