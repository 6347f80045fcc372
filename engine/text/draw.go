package text

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// QuadDrawer receives one textured quad per glyph.
type QuadDrawer interface {
	DrawTexturedQuadUV(cx, cy, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32)
}

// LineHeight is the distance between baselines at the atlas size.
func LineHeight(f *Font) float32 { return f.Ascent - f.Descent + f.LineGap }

func BaselineToTop(f *Font) float32    { return f.Ascent }
func BaselineToBottom(f *Font) float32 { return -f.Descent }

// scaleFor maps a line height in pixels to the atlas scale.
func scaleFor(f *Font, lineHeight float32) float32 {
	lh := LineHeight(f)
	if lh <= 0 {
		return 1
	}
	return lineHeight / lh
}

// DrawText draws s with its top-left corner at (x, y), each line lineHeight
// pixels tall. Positive Y goes downward. Nothing is drawn until the font
// atlas has been uploaded.
func DrawText(dst QuadDrawer, f *Font, x, y float32, s string, lineHeight float32, color colors.Color) {
	if f.Texture == nil {
		return
	}
	scale := scaleFor(f, lineHeight)
	penX := x
	baseY := y + f.Ascent*scale
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += lineHeight
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok := f.Glyphs[' ']; ok {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}
		penX += f.kern(prev, r) * scale

		if g.W > 0 && g.H > 0 {
			w, h := float32(g.W)*scale, float32(g.H)*scale
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			dst.DrawTexturedQuadUV(left+w*0.5, top+h*0.5, w, h, f.Texture, color, 0, g.U0, g.V0, g.U1, g.V1)
		}
		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the size of s drawn with the given line height.
func MeasureText(f *Font, s string, lineHeight float32) (width, height float32) {
	scale := scaleFor(f, lineHeight)
	var lineW float32
	prev := rune(-1)
	height = lineHeight

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineHeight
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok := f.Glyphs[' ']; ok {
				lineW += sp.Advance * scale
			}
			prev = r
			continue
		}
		lineW += (f.kern(prev, r) + g.Advance) * scale
		prev = r
	}
	return max(width, lineW), height
}
