package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
)

type quad struct {
	rect  geom.Rect
	color colors.Color
	tex   core.Texture
	rot   float32
}

// recordingFB is a Framebuffer that remembers what was drawn into it.
type recordingFB struct {
	w, h   int
	quads  []quad
	frames int
	open   bool
}

func (fb *recordingFB) Size() (int, int) { return fb.w, fb.h }

func (fb *recordingFB) DrawQuad(cx, cy, w, h float32, color colors.Color, rot float32) {
	fb.DrawTexturedQuadUV(cx, cy, w, h, nil, color, rot, 0, 0, 1, 1)
}

func (fb *recordingFB) DrawTexturedQuadUV(cx, cy, w, h float32, tex core.Texture, tint colors.Color, rot float32, _, _, _, _ float32) {
	fb.quads = append(fb.quads, quad{
		rect:  geom.RectXYWH(float64(cx-w/2), float64(cy-h/2), float64(w), float64(h)),
		color: tint,
		tex:   tex,
		rot:   rot,
	})
}

func (fb *recordingFB) BeginFrame() { fb.open = true; fb.quads = fb.quads[:0] }
func (fb *recordingFB) EndFrame()   { fb.open = false; fb.frames++ }

// scripted is a test widget that records what the controller does to it.
type scripted struct {
	Base
	name        string
	constraints Constraints
	log         *[]string
	onCalc      func(cx *ConstraintsContext)
	onLayout    func(cx *LayoutContext)
	events      []core.Event
	draws       int
	updates     int
}

func newScripted(name string, log *[]string, kids ...Widget) *scripted {
	p := &scripted{name: name, constraints: DefaultConstraints(), log: log}
	p.children = kids
	return p
}

func (p *scripted) record(what string) {
	if p.log != nil {
		*p.log = append(*p.log, what+":"+p.name)
	}
}

func (p *scripted) CalcConstraints(cx *ConstraintsContext) Constraints {
	p.record("calc")
	if p.onCalc != nil {
		p.onCalc(cx)
	}
	return p.constraints
}

func (p *scripted) LayoutChildren(cx *LayoutContext) {
	p.record("layout")
	if p.onLayout != nil {
		p.onLayout(cx)
		return
	}
	p.Base.LayoutChildren(cx)
}

func (p *scripted) Draw(*DrawContext)         { p.record("draw"); p.draws++ }
func (p *scripted) Update(float64)            { p.updates++ }
func (p *scripted) HandleEvent(ev core.Event) { p.events = append(p.events, ev) }

// sensing is a scripted widget that takes part in hit-testing.
type sensing struct {
	scripted
	sense Sense
}

func newSensing(name string, kids ...Widget) *sensing {
	s := &sensing{}
	s.name = name
	s.constraints = DefaultConstraints()
	s.children = kids
	return s
}

func (s *sensing) Sense() *Sense { return &s.sense }

func mouseDown(x, y float64) core.Event {
	return core.EventMouseDown{Button: core.MouseButtonLeft, X: x, Y: y}
}

func mouseUp(x, y float64) core.Event {
	return core.EventMouseUp{Button: core.MouseButtonLeft, X: x, Y: y}
}

func mouseMove(x, y float64) core.Event { return core.EventMouseMove{X: x, Y: y} }
