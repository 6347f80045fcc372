package ui

import (
	"math"

	"github.com/hubastard/canopy/engine/core"
)

const textureSpinSpeed = 4 // spins per second

// TextureButton is an image button tinted with the theme's usable or hover
// color. Swap spins it once, switching to the new texture halfway through.
type TextureButton struct {
	Base
	sense         Sense
	current, next core.Texture
	spin          float64 // 0..1, 1 when at rest
	onClick       func()
}

func NewTextureButton(tex core.Texture) *TextureButton {
	return &TextureButton{current: tex, next: tex, spin: 1}
}

func (b *TextureButton) OnClick(f func()) *TextureButton { b.onClick = f; return b }
func (b *TextureButton) Sense() *Sense                   { return &b.sense }
func (b *TextureButton) WasClicked() bool                { return b.sense.TakeClicked() }

// Swap starts a spin that ends showing tex.
func (b *TextureButton) Swap(tex core.Texture) {
	b.current, b.next = b.next, tex
	b.spin = 0
}

// Spin replays the spin without changing the texture.
func (b *TextureButton) Spin() {
	b.current = b.next
	b.spin = 0
}

// Texture returns the texture currently on screen.
func (b *TextureButton) Texture() core.Texture {
	if b.spin < 0.5 {
		return b.current
	}
	return b.next
}

// Angle returns the current spin rotation in radians, 0 at rest.
func (b *TextureButton) Angle() float64 {
	if b.spin >= 1 {
		return 0
	}
	return math.Pi * (math.Cos(b.spin*math.Pi) - 1)
}

func (b *TextureButton) CalcConstraints(*ConstraintsContext) Constraints {
	return DefaultConstraints()
}

func (b *TextureButton) Update(dt float64) {
	b.spin = math.Min(b.spin+dt*textureSpinSpeed, 1)
}

func (b *TextureButton) Draw(cx *DrawContext) {
	r := cx.Position
	if b.sense.Captured() {
		r = shrinkRect(r, cx.Theme.PressRatio)
	}
	tint := cx.Theme.UsableColor
	if b.sense.Hovered() {
		tint = cx.Theme.HoverColor
	}
	cx.DrawTextureRotated(r, b.Texture(), tint, b.Angle())
}

func (b *TextureButton) HandleEvent(core.Event) {
	if b.onClick != nil && b.sense.TakeClicked() {
		b.onClick()
	}
}
