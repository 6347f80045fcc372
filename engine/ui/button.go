package ui

import (
	"math"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const pressDuration = 0.12 // seconds

// pressAnim animates the label shrink while a button is held.
type pressAnim struct {
	ratio      float64
	target     float64
	pressRatio float64
	tween      *gween.Tween
}

// Button is a text button. It highlights on hover, shrinks its label while
// pressed and reports clicks through WasClicked or an OnClick callback.
// The label takes the theme's hover and usable colors unless it was given
// its own color.
type Button struct {
	Base
	sense   Sense
	label   *Text
	onClick func()
	anim    *pressAnim
}

func NewButton(label string) *Button {
	b := &Button{label: NewText(label)}
	b.children = []Widget{b.label}
	return b
}

func (b *Button) OnClick(f func()) *Button { b.onClick = f; return b }
func (b *Button) Label() *Text             { return b.label }
func (b *Button) Sense() *Sense            { return &b.sense }

// WasClicked reports whether the button was clicked since the last call.
// Buttons with an OnClick callback consume their clicks themselves.
func (b *Button) WasClicked() bool { return b.sense.TakeClicked() }

func (b *Button) CalcConstraints(cx *ConstraintsContext) Constraints {
	return cx.ConstraintsOf(b.label)
}

func (b *Button) LayoutChildren(cx *LayoutContext) {
	b.anim = StateWith(cx, func() pressAnim { return pressAnim{} })
	b.anim.pressRatio = cx.Theme.PressRatio
	cx.SetPosition(b.label, shrinkRect(cx.Position, b.anim.ratio))
}

func (b *Button) Update(dt float64) {
	a := b.anim
	if a == nil {
		return
	}
	target := 0.0
	if b.sense.Captured() {
		target = a.pressRatio
	}
	if target != a.target {
		a.target = target
		a.tween = gween.New(float32(a.ratio), float32(target), pressDuration, ease.OutQuad)
	}
	if a.tween != nil {
		v, done := a.tween.Update(float32(dt))
		a.ratio = float64(v)
		if done {
			a.ratio, a.tween = a.target, nil
		}
	}
}

func (b *Button) Draw(cx *DrawContext) {
	if b.sense.Hovered() {
		b.label.setFallbackColor(cx.Theme.HoverColor)
		thickness := math.Max(1, cx.Position.Height()/32)
		line := geom.Rect{
			Min: geom.V(cx.Position.Min.X, cx.Position.Max.Y-thickness),
			Max: cx.Position.Max,
		}
		cx.FillRect(line, cx.Theme.HoverColor)
	} else {
		b.label.setFallbackColor(cx.Theme.UsableColor)
	}
}

func (b *Button) HandleEvent(core.Event) {
	if b.onClick != nil && b.sense.TakeClicked() {
		b.onClick()
	}
}
