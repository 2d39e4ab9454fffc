package gesture

import (
	"scene-editor/internal/camera"
	"scene-editor/internal/selection"
)

// Tracking holds the drag endpoints seen on the previous frame, in GUI space
// and in screen space. It exists only to detect change between frames.
type Tracking struct {
	StartGUI, MouseGUI       camera.Point
	StartScreen, MouseScreen camera.Point
}

func sentinelTracking() Tracking {
	return Tracking{StartGUI: camera.Inf(), MouseGUI: camera.Inf()}
}

// Session is the state of one rectangle gesture. It is created when the
// rectangle tool takes hot control and dropped when hot control moves away.
type Session struct {
	Tracking
	Candidates selection.Set
}

func newSession() *Session {
	return &Session{Tracking: sentinelTracking(), Candidates: selection.NewSet()}
}

// track records the host's drag points and reports whether either moved since
// the previous frame. Screen points are only recomputed for the moved end.
func (s *Session) track(start, mouse camera.Point, toScreen func(camera.Point) camera.Point) bool {
	dirty := false
	if s.StartGUI != start {
		s.StartGUI = start
		s.StartScreen = toScreen(start)
		dirty = true
	}
	if s.MouseGUI != mouse {
		s.MouseGUI = mouse
		s.MouseScreen = toScreen(mouse)
		dirty = true
	}
	return dirty
}
