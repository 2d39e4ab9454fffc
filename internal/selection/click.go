package selection

import (
	"slices"

	"github.com/sirupsen/logrus"

	"scene-editor/internal/camera"
)

// Picker resolves a plain click into a selection change.
type Picker struct {
	scene Scene
	store Store
	log   logrus.FieldLogger
}

// NewPicker returns a picker reading the scene and writing the store.
func NewPicker(scene Scene, store Store, log logrus.FieldLogger) *Picker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Picker{scene: scene, store: store, log: log}
}

// StripGenerated removes generated proxies from the global selection. The
// store is only written when something was removed.
func (p *Picker) StripGenerated() {
	ids := p.store.IDs()
	if len(ids) == 0 {
		return
	}
	if filtered, changed := FilterGenerated(ids, p.scene.IsGenerated); changed {
		p.store.SetIDs(filtered)
	}
}

// Click picks the object under point and applies mods to the selection.
// Additive and Subtractive clicks on empty space leave the selection alone;
// a Replace click on empty space clears it.
func (p *Picker) Click(cam camera.Camera, point camera.Point, mods Modifiers) {
	id, hit := p.scene.PickAtPoint(cam, point)
	if hit {
		id = p.scene.SelectionBase(id)
	}

	mode := mods.Mode()
	p.log.WithFields(logrus.Fields{"mode": mode, "hit": hit, "object": id}).Debug("selection click")

	switch mode {
	case Additive:
		if !hit {
			return
		}
		ids := p.store.IDs()
		if !slices.Contains(ids, id) {
			ids = append(slices.Clone(ids), id)
		}
		p.store.SetIDs(ids)
	case Subtractive:
		if !hit {
			return
		}
		ids := slices.DeleteFunc(slices.Clone(p.store.IDs()), func(o ObjectID) bool { return o == id })
		p.store.SetIDs(ids)
	default:
		p.store.SetActive(id, hit)
	}
}
