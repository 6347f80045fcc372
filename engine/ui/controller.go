package ui

import (
	"math"

	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/profiler"
)

// Controller lays out, updates, draws and dispatches input to a widget tree.
// It owns the identity store, so one controller should drive one tree.
// All methods must be called from the thread running the main loop.
type Controller struct {
	theme  *Theme
	target geom.Vec2 // zero when unset
	size   geom.Vec2 // UI-space size of the root
	scale  float64
	store  *store

	touchID     int
	touchActive bool
}

func NewController(theme *Theme) *Controller {
	return &Controller{
		theme: theme,
		size:  geom.V(1, 1),
		scale: 1,
		store: newStore(),
	}
}

// TargetResolution makes widget coordinates resolution independent: the
// virtual w x h area is scaled uniformly to cover the real framebuffer.
func (c *Controller) TargetResolution(w, h float64) *Controller {
	c.target = geom.V(w, h)
	return c
}

func (c *Controller) Theme() *Theme { return c.theme }

// Scale returns the UI-to-pixel factor computed at the last Resize or Draw.
func (c *Controller) Scale() float64 { return c.scale }

// Size returns the UI-space size of the root computed at the last Resize or Draw.
func (c *Controller) Size() geom.Vec2 { return c.size }

// Resize recomputes scale and UI-space size for a framebuffer of w x h pixels.
// Draw calls it; hosts that dispatch events before the first draw call it too.
func (c *Controller) Resize(w, h int) {
	fb := geom.V(float64(w), float64(h))
	c.scale = 1
	if c.target.X > 0 && c.target.Y > 0 {
		c.scale = math.Max(fb.X/c.target.X, fb.Y/c.target.Y)
	}
	if c.scale <= 0 {
		c.scale = 1
	}
	c.size = fb.Div(c.scale)
}

// Position returns the pixel rectangle computed for w by the last layout.
// It panics if w was not part of that layout.
func (c *Controller) Position(w Widget) geom.Rect { return c.store.position(w) }

// Constraints returns the constraints computed for w by the last layout.
func (c *Controller) Constraints(w Widget) Constraints { return c.store.constraints(w) }

// Update lays out the tree and calls Update on every widget, parents first.
func (c *Controller) Update(root Widget, dt float64) {
	c.layout(root)
	Traverse(root, func(w Widget) {
		if s, ok := w.(Sensor); ok {
			s.Sense().Update(dt)
		}
		w.Update(dt)
	}, nil)
}

// Draw recomputes the scale from fb, lays out the tree and draws every
// widget, parents first.
func (c *Controller) Draw(root Widget, fb Framebuffer) {
	defer profiler.Start("ui.Draw")()
	c.Resize(fb.Size())
	c.layout(root)
	cx := &DrawContext{Theme: c.theme, Framebuffer: fb}
	Traverse(root, func(w Widget) {
		cx.Position = c.store.position(w)
		w.Draw(cx)
	}, nil)
}

// Layout runs a full layout pass without updating or drawing.
func (c *Controller) Layout(root Widget) { c.layout(root) }

func (c *Controller) layout(root Widget) {
	defer profiler.Start("ui.layout")()
	s := c.store
	s.beginPass()

	ccx := &ConstraintsContext{Theme: c.theme, store: s}
	Traverse(root, nil, func(w Widget) {
		ccx.widget = w
		s.setConstraints(w, w.CalcConstraints(ccx))
	})

	s.setPosition(root, geom.RectFromSize(c.size))
	lcx := &LayoutContext{Theme: c.theme, Scale: c.scale, store: s}
	Traverse(root, func(w Widget) {
		lcx.widget = w
		lcx.Position = s.position(w)
		lcx.Constraints = s.constraints(w)
		w.LayoutChildren(lcx)
	}, nil)

	s.scalePositions(c.scale)
	s.endPass()
}
