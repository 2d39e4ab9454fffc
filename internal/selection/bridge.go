package selection

import "scene-editor/internal/camera"

// Bridge is the narrow view of the host's rectangle-selection tool that the
// core drives. Implementations are bound once at startup; see gesture.Manager.
type Bridge interface {
	// RectSelectionID is the control id the host tool takes hot control with.
	RectSelectionID() int
	// Dragging reports whether a rectangle drag is in progress.
	Dragging() bool
	// DragPoints returns the drag start and current mouse point in GUI space.
	DragPoints() (start, mouse camera.Point)
	// SelectionStart is the selection snapshot taken when the drag began.
	SelectionStart() []ObjectID
	// LastSelection is the host-owned map of objects swept this drag. The core
	// only inserts keys (with false, meaning tentative) and never deletes.
	LastSelection() map[ObjectID]bool
	// SetCurrentSelection records the set the core computed for this frame.
	SetCurrentSelection(ids []ObjectID)
	// ApplyMerge performs the authoritative selection update.
	ApplyMerge(previous, candidates []ObjectID, mode Mode, dragging bool)
}

// Scene is the spatial query surface of the scene.
type Scene interface {
	ObjectsInFrustum(f camera.Frustum) []ObjectID
	PickAtPoint(cam camera.Camera, p camera.Point) (ObjectID, bool)
	// SelectionBase returns the ancestor that should be selected in place of
	// id, or id itself.
	SelectionBase(id ObjectID) ObjectID
	IsGenerated(id ObjectID) bool
}

// Store is the host's global selection.
type Store interface {
	IDs() []ObjectID
	SetIDs(ids []ObjectID)
	// SetActive makes id the only selected object, or clears the selection
	// when ok is false.
	SetActive(id ObjectID, ok bool)
}
