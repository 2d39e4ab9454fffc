package editor

import "scene-editor/internal/gesture"

// FirstPassiveID is the first id handed out by PassiveControlID. Ids below it
// belong to real controls.
const FirstPassiveID = 1000

// Controls is the editor's control bookkeeping. A hot control set to a
// passive id lasts for the rest of the current event only; BeginEvent puts
// back the control that held it before.
type Controls struct {
	hot         int
	held        int
	passive     bool
	nextPassive int
	nearest     int
	keyboard    int
	repaint     bool
}

// NewControls returns controls with nothing hot.
func NewControls() *Controls {
	return &Controls{nextPassive: FirstPassiveID}
}

// BeginEvent ends any passive hot control left from the previous event.
func (c *Controls) BeginEvent() {
	if c.passive {
		c.hot, c.passive = c.held, false
	}
}

func (c *Controls) HotControl() int { return c.hot }

func (c *Controls) SetHotControl(id int) {
	switch {
	case id >= FirstPassiveID && !c.passive:
		c.held, c.passive = c.hot, true
	case id < FirstPassiveID:
		c.passive = false
	}
	c.hot = id
}

// PassiveControlID allocates a fresh passive id.
func (c *Controls) PassiveControlID() int {
	id := c.nextPassive
	c.nextPassive++
	return id
}

func (c *Controls) NearestControl() int  { return c.nearest }
func (c *Controls) KeyboardControl() int { return c.keyboard }

// SetNearest records the control under the pointer, 0 for the bare viewport.
func (c *Controls) SetNearest(id int) { c.nearest = id }

// SetKeyboard records the control holding keyboard focus, 0 for none.
func (c *Controls) SetKeyboard(id int) { c.keyboard = id }

func (c *Controls) Repaint() { c.repaint = true }

// TakeRepaint reports and clears a pending repaint request.
func (c *Controls) TakeRepaint() bool {
	r := c.repaint
	c.repaint = false
	return r
}

var _ gesture.Controls = (*Controls)(nil)
