package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
)

// Framebuffer is the drawing target handed through to widgets. The controller
// only reads its size; widgets draw quads into it in pixel coordinates.
type Framebuffer interface {
	Size() (w, h int)
	// DrawQuad draws a solid quad centered at (cx, cy).
	DrawQuad(cx, cy, w, h float32, color colors.Color, rotationRad float32)
	// DrawTexturedQuadUV draws a texture sub-rect centered at (cx, cy).
	DrawTexturedQuadUV(cx, cy, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32)
}

// ConstraintsContext is handed to CalcConstraints. It can only read
// constraints already computed this pass, which are the widget's descendants.
type ConstraintsContext struct {
	Theme  *Theme
	store  *store
	widget Widget
}

func (cx *ConstraintsContext) ConstraintsOf(w Widget) Constraints {
	return cx.store.constraints(w)
}

func (cx *ConstraintsContext) slots() *slotList { return cx.store.slotsFor(cx.widget) }

// LayoutContext is handed to LayoutChildren with the widget's own rectangle
// and constraints. Positions are in UI space; Scale converts to pixels.
type LayoutContext struct {
	Theme       *Theme
	Position    geom.Rect
	Constraints Constraints
	Scale       float64
	store       *store
	widget      Widget
}

func (cx *LayoutContext) ConstraintsOf(w Widget) Constraints {
	return cx.store.constraints(w)
}

func (cx *LayoutContext) SetPosition(w Widget, r geom.Rect) {
	cx.store.setPosition(w, r)
}

func (cx *LayoutContext) slots() *slotList { return cx.store.slotsFor(cx.widget) }

// DrawContext is handed to Draw with the widget's final pixel rectangle.
type DrawContext struct {
	Theme       *Theme
	Position    geom.Rect
	Framebuffer Framebuffer
}

// FillRect draws a solid rectangle.
func (cx *DrawContext) FillRect(r geom.Rect, c colors.Color) {
	if c[3] <= 0 || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	center := r.Center()
	cx.Framebuffer.DrawQuad(float32(center.X), float32(center.Y), float32(r.Width()), float32(r.Height()), c, 0)
}

// DrawTexture stretches tex over r.
func (cx *DrawContext) DrawTexture(r geom.Rect, tex core.Texture, tint colors.Color) {
	cx.DrawTextureRotated(r, tex, tint, 0)
}

// DrawTextureRotated stretches tex over r, rotated by rad around its center.
func (cx *DrawContext) DrawTextureRotated(r geom.Rect, tex core.Texture, tint colors.Color, rad float64) {
	if tex == nil || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	center := r.Center()
	cx.Framebuffer.DrawTexturedQuadUV(float32(center.X), float32(center.Y), float32(r.Width()), float32(r.Height()), tex, tint, float32(rad), 0, 0, 1, 1)
}
