package ui

import "github.com/hubastard/canopy/engine/core"

// Target is a Framebuffer that batches a frame between BeginFrame and EndFrame.
type Target interface {
	Framebuffer
	BeginFrame()
	EndFrame()
}

// Layer hosts a controller and its root widget on the engine layer stack.
// Cursor events that land on captured widgets are consumed, so layers below
// only see input the UI did not take.
type Layer struct {
	Controller *Controller
	Root       Widget
	Target     Target
}

func NewLayer(c *Controller, root Widget, target Target) *Layer {
	return &Layer{Controller: c, Root: root, Target: target}
}

func (l *Layer) OnAttach(e *core.Engine) {
	if e != nil && e.Window != nil {
		l.Controller.Resize(e.Window.FramebufferSize())
	}
}

func (l *Layer) OnDetach(*core.Engine) {}

func (l *Layer) OnUpdate(_ *core.Engine, dt float64) {
	l.Controller.Update(l.Root, dt)
}

func (l *Layer) OnRender(*core.Engine, float64) {
	if l.Target == nil {
		return
	}
	l.Target.BeginFrame()
	l.Controller.Draw(l.Root, l.Target)
	l.Target.EndFrame()
}

func (l *Layer) OnEvent(_ *core.Engine, ev core.Event) bool {
	if r, ok := ev.(core.EventResize); ok {
		l.Controller.Resize(r.W, r.H)
		return false
	}
	return l.Controller.HandleEvent(l.Root, ev)
}
