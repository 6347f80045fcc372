package ui

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/profiler"
)

type cursorAction int

const (
	cursorNone cursorAction = iota
	cursorMove
	cursorPress
	cursorRelease
)

// cursor maps mouse and single-touch events onto one virtual pointer. Only
// the first touch point down is followed until it ends.
func (c *Controller) cursor(ev core.Event) (cursorAction, geom.Vec2) {
	switch e := ev.(type) {
	case core.EventMouseMove:
		return cursorMove, geom.V(e.X, e.Y)
	case core.EventMouseDown:
		return cursorPress, geom.V(e.X, e.Y)
	case core.EventMouseUp:
		return cursorRelease, geom.V(e.X, e.Y)
	case core.EventTouchStart:
		if c.touchActive && c.touchID != e.ID {
			return cursorNone, geom.Vec2{}
		}
		c.touchID, c.touchActive = e.ID, true
		return cursorPress, geom.V(e.X, e.Y)
	case core.EventTouchMove:
		if !c.touchActive || c.touchID != e.ID {
			return cursorNone, geom.Vec2{}
		}
		return cursorMove, geom.V(e.X, e.Y)
	case core.EventTouchEnd:
		if !c.touchActive || c.touchID != e.ID {
			return cursorNone, geom.Vec2{}
		}
		c.touchActive = false
		return cursorRelease, geom.V(e.X, e.Y)
	}
	return cursorNone, geom.Vec2{}
}

// HandleEvent lays out the tree and dispatches ev to it. It reports whether
// any widget holds a capture afterwards, in which case the host should not
// also treat ev as gameplay input.
//
// Capture is tracked per widget: overlapping widgets hit by the same press
// are all captured.
func (c *Controller) HandleEvent(root Widget, ev core.Event) bool {
	defer profiler.Start("ui.HandleEvent")()
	c.layout(root)

	action, pos := c.cursor(ev)
	captured := false
	Traverse(root, func(w Widget) {
		if action == cursorNone {
			return
		}
		inside := c.store.position(w).Contains(pos)
		var sense *Sense
		if s, ok := w.(Sensor); ok {
			sense = s.Sense()
		}
		switch action {
		case cursorMove:
			if sense != nil {
				sense.SetHovered(inside)
			}
			w.HandleEvent(ev)
		case cursorPress:
			if sense == nil {
				return
			}
			if inside {
				sense.SetCaptured(true)
				w.HandleEvent(ev)
			} else if sense.Captured() {
				w.HandleEvent(ev)
			}
		case cursorRelease:
			wasCaptured := false
			if sense != nil {
				wasCaptured = sense.Captured()
				sense.SetCaptured(false)
				if wasCaptured && inside {
					sense.Click()
				}
			}
			if wasCaptured || inside {
				w.HandleEvent(ev)
			}
		}
	}, func(w Widget) {
		if s, ok := w.(Sensor); ok && s.Sense().Captured() {
			captured = true
		}
	})
	return captured
}
