package ui

import (
	"math"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
)

const sliderAnimationSpeed = 5.0

// Slider picks a value in [min, max] by dragging. The knob grows while the
// slider is hovered or held.
type Slider struct {
	Base
	sense      Sense
	value      float64
	min, max   float64
	onChange   func(float64)
	tickRadius float64   // fraction of the height
	rect       geom.Rect // pixel rectangle from the last layout
}

func NewSlider(value, min, max float64) *Slider {
	return &Slider{value: value, min: min, max: max, tickRadius: 1.0 / 6}
}

func (s *Slider) OnChange(f func(float64)) *Slider { s.onChange = f; return s }
func (s *Slider) Sense() *Sense                    { return &s.sense }
func (s *Slider) Value() float64                   { return s.value }
func (s *Slider) SetValue(v float64)               { s.value = clampf(v, s.min, s.max) }

func (s *Slider) CalcConstraints(cx *ConstraintsContext) Constraints {
	size := cx.Theme.TextSize
	return Constraints{MinSize: geom.V(size*4, size), Flex: geom.V(1, 0)}
}

func (s *Slider) LayoutChildren(cx *LayoutContext) {
	s.rect = cx.Position.Scale(cx.Scale)
}

func (s *Slider) Update(dt float64) {
	target := 1.0 / 6
	if s.sense.Hovered() || s.sense.Captured() {
		target = 1.0 / 2
	}
	step := sliderAnimationSpeed * dt
	s.tickRadius += clampf(target-s.tickRadius, -step, step)
}

func (s *Slider) HandleEvent(ev core.Event) {
	if !s.sense.Captured() {
		return
	}
	var x float64
	switch e := ev.(type) {
	case core.EventMouseDown:
		x = e.X
	case core.EventMouseMove:
		x = e.X
	case core.EventTouchStart:
		x = e.X
	case core.EventTouchMove:
		x = e.X
	default:
		return
	}
	w, h := s.rect.Width(), s.rect.Height()
	if w <= h {
		return
	}
	t := clampf((x-s.rect.Min.X-h/2)/(w-h), 0, 1)
	s.value = s.min + t*(s.max-s.min)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func (s *Slider) fraction() float64 {
	if s.max == s.min {
		return 0
	}
	return clampf((s.value-s.min)/(s.max-s.min), 0, 1)
}

func (s *Slider) Draw(cx *DrawContext) {
	r := cx.Position
	h := r.Height()
	line := h / 3
	knobX := r.Min.X + h/2 + s.fraction()*math.Max(0, r.Width()-h)
	midY := r.Min.Y + h/2

	cx.FillRect(geom.Rect{Min: geom.V(r.Min.X+line/2, midY-line/2), Max: geom.V(knobX, midY+line/2)}, cx.Theme.HoverColor)
	cx.FillRect(geom.Rect{Min: geom.V(knobX, midY-line/2), Max: geom.V(r.Max.X-line/2, midY+line/2)}, cx.Theme.UsableColor)

	radius := s.tickRadius * h
	cx.FillRect(geom.Rect{Min: geom.V(knobX-radius, midY-radius), Max: geom.V(knobX+radius, midY+radius)}, cx.Theme.HoverColor)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
