package ui

import (
	"strings"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/text"
)

// Text is a static label. It asks for one line of the text size per line of
// text and draws at whatever height it is given, so it scales with the UI.
type Text struct {
	Base
	text     string
	lines    int
	fontSize float64
	font     *text.Font
	color    colors.Color
	hasColor bool
	// fallback replaces the theme text color when no color was set, so
	// containers can restyle labels without overriding the caller.
	fallback    colors.Color
	hasFallback bool
}

func NewText(str string) *Text {
	t := &Text{}
	t.SetText(str)
	return t
}

func (t *Text) FontSize(size float64) *Text      { t.fontSize = size; return t }
func (t *Text) Font(font *text.Font) *Text       { t.font = font; return t }
func (t *Text) Color(c colors.Color) *Text       { t.color, t.hasColor = c, true; return t }
func (t *Text) String() string                   { return t.text }
func (t *Text) HasColor() bool                   { return t.hasColor }
func (t *Text) resolveFont(th *Theme) *text.Font { return pick(t.font, th.Font) }

func (t *Text) setFallbackColor(c colors.Color) { t.fallback, t.hasFallback = c, true }

func (t *Text) SetText(str string) {
	t.text = str
	t.lines = strings.Count(str, "\n") + 1
}

func (t *Text) CalcConstraints(cx *ConstraintsContext) Constraints {
	size := t.fontSize
	if size == 0 {
		size = cx.Theme.TextSize
	}
	var width float64
	if f := t.resolveFont(cx.Theme); f != nil && t.text != "" {
		w, _ := text.MeasureText(f, t.text, float32(size))
		width = float64(w)
	}
	return Constraints{MinSize: geom.V(width, size*float64(t.lines))}
}

func (t *Text) Draw(cx *DrawContext) {
	f := t.resolveFont(cx.Theme)
	if t.text == "" || f == nil {
		return
	}
	c := cx.Theme.TextColor
	switch {
	case t.hasColor:
		c = t.color
	case t.hasFallback:
		c = t.fallback
	}
	px := cx.Position.Height() / float64(t.lines)
	text.DrawText(cx.Framebuffer, f, float32(cx.Position.Min.X), float32(cx.Position.Min.Y), t.text, float32(px), c)
}

func pick[T any](v, fallback *T) *T {
	if v != nil {
		return v
	}
	return fallback
}

// ------ ColorBox ------

// ColorBox fills its rectangle with a solid color.
type ColorBox struct {
	Base
	Color colors.Color
	Size  geom.Vec2
}

func NewColorBox(c colors.Color) *ColorBox { return &ColorBox{Color: c} }

// Divider is a color box with a minimum size of size x size.
func Divider(c colors.Color, size float64) *ColorBox {
	return &ColorBox{Color: c, Size: geom.V(size, size)}
}

func (b *ColorBox) CalcConstraints(*ConstraintsContext) Constraints {
	return Constraints{MinSize: b.Size}
}

func (b *ColorBox) Draw(cx *DrawContext) { cx.FillRect(cx.Position, b.Color) }

// ------ TextureBox ------

// TextureBox stretches a texture over its rectangle. It asks for the
// texture's pixel size unless a size is set.
type TextureBox struct {
	Base
	tex  core.Texture
	tint colors.Color
	size geom.Vec2
}

func NewTextureBox(tex core.Texture) *TextureBox {
	return &TextureBox{tex: tex, tint: colors.White}
}

func (t *TextureBox) Tint(c colors.Color) *TextureBox   { t.tint = c; return t }
func (t *TextureBox) SizeHint(w, h float64) *TextureBox { t.size = geom.V(w, h); return t }

func (t *TextureBox) CalcConstraints(*ConstraintsContext) Constraints {
	if !t.size.IsZero() {
		return Constraints{MinSize: t.size}
	}
	if t.tex == nil {
		return Constraints{}
	}
	w, h := t.tex.Size()
	return Constraints{MinSize: geom.V(float64(w), float64(h))}
}

func (t *TextureBox) Draw(cx *DrawContext) {
	cx.DrawTexture(cx.Position, t.tex, t.tint)
}
