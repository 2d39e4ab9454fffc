package host

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"scene-editor/internal/camera"
	"scene-editor/internal/gesture"
	"scene-editor/internal/selection"
)

const (
	// RectSelectionID is the control id the rectangle tool takes hot control with.
	RectSelectionID = 1
	// DefaultDragDistance is how far (pixels) the pointer must travel from the
	// press point before a rectangle drag starts.
	DefaultDragDistance = 6
)

// DragState is the rectangle tool's bookkeeping for one drag.
type DragState struct {
	Dragging         bool
	Start            camera.Point
	Mouse            camera.Point
	SelectionStart   []selection.ObjectID
	LastSelection    map[selection.ObjectID]bool
	CurrentSelection []selection.ObjectID
}

// RectSelection is the rectangle-select tool. It takes hot control on a press
// over empty viewport space, tracks the drag and applies merges to the global
// selection.
type RectSelection struct {
	sel          *Selection
	dragDistance float32
	log          logrus.FieldLogger
	state        DragState
}

// NewRectSelection returns a tool writing to sel. dragDistance <= 0 selects
// DefaultDragDistance.
func NewRectSelection(sel *Selection, dragDistance float32, log logrus.FieldLogger) *RectSelection {
	if dragDistance <= 0 {
		dragDistance = DefaultDragDistance
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RectSelection{sel: sel, dragDistance: dragDistance, log: log}
}

// HandleEvent runs the tool for one event. It sees every event before the
// gesture manager does.
func (r *RectSelection) HandleEvent(evt *gesture.Event, ctl gesture.Controls) {
	hot := ctl.HotControl() == RectSelectionID
	switch evt.Type {
	case gesture.MouseDown:
		if evt.Button != gesture.ButtonLeft || ctl.NearestControl() != 0 || ctl.HotControl() != 0 {
			return
		}
		ctl.SetHotControl(RectSelectionID)
		r.state = DragState{Start: evt.Mouse, Mouse: evt.Mouse}
	case gesture.MouseDrag:
		if !hot {
			return
		}
		r.state.Mouse = evt.Mouse
		if !r.state.Dragging && distance(r.state.Start, r.state.Mouse) >= r.dragDistance {
			r.state.Dragging = true
			r.state.SelectionStart = r.sel.IDs()
			r.state.LastSelection = map[selection.ObjectID]bool{}
			r.state.CurrentSelection = nil
			r.log.WithField("start", len(r.state.SelectionStart)).Info("rectangle drag started")
		}
		evt.Use()
	case gesture.MouseUp:
		if !hot {
			return
		}
		ctl.SetHotControl(0)
		if r.state.Dragging {
			r.log.WithField("selected", r.sel.Len()).Info("rectangle drag finished")
		}
		r.state = DragState{}
		evt.Use()
	}
}

// Dragging reports whether a rectangle drag is in progress.
func (r *RectSelection) Dragging() bool {
	return r.state.Dragging
}

// State returns a deep copy of the drag bookkeeping.
func (r *RectSelection) State() DragState {
	var out DragState
	if err := copier.CopyWithOption(&out, &r.state, copier.Option{DeepCopy: true}); err != nil {
		r.log.WithError(err).Warn("drag state snapshot failed")
	}
	return out
}

// ApplyMerge updates the global selection from the drag's starting selection
// and the rectangle's objects. Candidates already swept this drag are marked
// confirmed in LastSelection.
func (r *RectSelection) ApplyMerge(previous, candidates []selection.ObjectID, mode selection.Mode, dragging bool) {
	var next []selection.ObjectID
	switch mode {
	case selection.Additive:
		next = append(slices.Clone(previous), candidates...)
	case selection.Subtractive:
		remove := selection.NewSet(candidates...)
		next = slices.DeleteFunc(slices.Clone(previous), remove.Has)
	default:
		next = slices.Clone(candidates)
	}
	r.sel.SetIDs(next)

	if dragging && r.state.LastSelection != nil {
		for _, id := range candidates {
			if _, ok := r.state.LastSelection[id]; ok {
				r.state.LastSelection[id] = true
			}
		}
	}
}

func distance(a, b camera.Point) float32 {
	d := b.Sub(a)
	return math32.Sqrt(d.X*d.X + d.Y*d.Y)
}

// bridge exposes a RectSelection as a selection.Bridge.
type bridge struct {
	r *RectSelection
}

// Bind returns the bridge to r. It fails when there is no tool to bind.
func Bind(r *RectSelection) (selection.Bridge, error) {
	if r == nil || r.sel == nil {
		return nil, errors.New("host: rectangle selection tool not available")
	}
	return bridge{r: r}, nil
}

func (b bridge) RectSelectionID() int { return RectSelectionID }
func (b bridge) Dragging() bool       { return b.r.state.Dragging }

func (b bridge) DragPoints() (start, mouse camera.Point) {
	return b.r.state.Start, b.r.state.Mouse
}

func (b bridge) SelectionStart() []selection.ObjectID {
	return slices.Clone(b.r.state.SelectionStart)
}

// LastSelection hands out the live map; the core inserts into it in place.
func (b bridge) LastSelection() map[selection.ObjectID]bool {
	if b.r.state.LastSelection == nil {
		b.r.state.LastSelection = map[selection.ObjectID]bool{}
	}
	return b.r.state.LastSelection
}

func (b bridge) SetCurrentSelection(ids []selection.ObjectID) {
	b.r.state.CurrentSelection = slices.Clone(ids)
}

func (b bridge) ApplyMerge(previous, candidates []selection.ObjectID, mode selection.Mode, dragging bool) {
	b.r.ApplyMerge(previous, candidates, mode, dragging)
}
