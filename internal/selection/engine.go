package selection

import (
	"github.com/sirupsen/logrus"

	"scene-editor/internal/camera"
)

// DefaultMinRectSize is the side length (pixels) a drag rectangle must exceed
// before the scene is queried.
const DefaultMinRectSize = 3

// Query is one frame's input to the frustum selection engine. Start and Mouse
// are in screen space.
type Query struct {
	Start, Mouse     camera.Point
	Camera           camera.Camera
	Modifiers        Modifiers
	ModifiersChanged bool
}

// Delta describes what one engine update did.
type Delta struct {
	Rect     camera.Rect
	Queried  bool       // the rectangle was large enough to query the scene
	Modified bool       // candidates or filtered sets changed
	Pushed   bool       // ApplyMerge was called
	Mode     Mode
	Current  []ObjectID // selection handed to the host, generated objects removed
	Start    []ObjectID // SelectionStart, generated objects removed
}

// Engine turns a screen rectangle into a selection update.
type Engine struct {
	bridge  Bridge
	scene   Scene
	minRect float32
	log     logrus.FieldLogger
}

// NewEngine returns an engine pushing results through bridge. minRect <= 0
// selects DefaultMinRectSize.
func NewEngine(bridge Bridge, scene Scene, minRect float32, log logrus.FieldLogger) *Engine {
	if minRect <= 0 {
		minRect = DefaultMinRectSize
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{bridge: bridge, scene: scene, minRect: minRect, log: log}
}

// Update queries the scene for objects under the rectangle, extends the
// host's LastSelection with new candidates and pushes the merge when anything
// changed. candidates is the running CandidateSet of the gesture; it is
// replaced or cleared in place.
func (e *Engine) Update(candidates Set, q Query) Delta {
	d := Delta{Rect: camera.PointsToRect(q.Start, q.Mouse)}

	if d.Rect.Larger(e.minRect) {
		d.Queried = true
		found := e.scene.ObjectsInFrustum(camera.SubFrustum(q.Camera, d.Rect))
		if len(found) > 0 {
			candidates.Replace(found)
			d.Modified = true
		} else if len(candidates) > 0 {
			clear(candidates)
			d.Modified = true
		}
	}

	d.Mode = q.Modifiers.Mode()
	last := e.bridge.LastSelection()

	var current []ObjectID
	if d.Modified && len(candidates) > 0 {
		for _, id := range candidates.Sorted() {
			if _, ok := last[id]; !ok {
				last[id] = false
			}
		}
		current = keys(last)
		e.bridge.SetCurrentSelection(current)
	} else {
		current = keys(last)
	}

	var changed bool
	if d.Start, changed = FilterGenerated(e.bridge.SelectionStart(), e.scene.IsGenerated); changed {
		d.Modified = true
	}
	if d.Current, changed = FilterGenerated(current, e.scene.IsGenerated); changed {
		d.Modified = true
	}

	if q.ModifiersChanged || d.Modified {
		e.bridge.ApplyMerge(d.Start, d.Current, d.Mode, e.bridge.Dragging())
		d.Pushed = true
		e.log.WithFields(logrus.Fields{
			"mode":       d.Mode,
			"candidates": len(candidates),
			"current":    len(d.Current),
		}).Debug("frustum selection pushed")
	}
	return d
}

func keys(m map[ObjectID]bool) []ObjectID {
	s := make(Set, len(m))
	for id := range m {
		s[id] = struct{}{}
	}
	return s.Sorted()
}
