package ebitenhost

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// Framebuffer draws UI quads onto the ebiten screen image of the current frame.
type Framebuffer struct {
	screen *ebiten.Image
	white  *ebiten.Image
	op     ebiten.DrawImageOptions
}

func NewFramebuffer() *Framebuffer {
	white := ebiten.NewImage(1, 1)
	white.Fill(image.White)
	return &Framebuffer{white: white}
}

// SetScreen sets the image drawn into until the next call.
func (fb *Framebuffer) SetScreen(screen *ebiten.Image) { fb.screen = screen }

func (fb *Framebuffer) BeginFrame() {}
func (fb *Framebuffer) EndFrame()   {}

func (fb *Framebuffer) Size() (int, int) {
	if fb.screen == nil {
		return 1, 1
	}
	b := fb.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (fb *Framebuffer) DrawQuad(cx, cy, w, h float32, color colors.Color, rotationRad float32) {
	fb.draw(fb.white, cx, cy, w, h, color, rotationRad)
}

func (fb *Framebuffer) DrawTexturedQuadUV(cx, cy, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return
	}
	tw, th := t.Size()
	r := image.Rect(
		int(math.Round(float64(u0)*float64(tw))), int(math.Round(float64(v0)*float64(th))),
		int(math.Round(float64(u1)*float64(tw))), int(math.Round(float64(v1)*float64(th))),
	)
	if r.Empty() {
		return
	}
	fb.draw(t.img.SubImage(r).(*ebiten.Image), cx, cy, w, h, tint, rotationRad)
}

func (fb *Framebuffer) draw(src *ebiten.Image, cx, cy, w, h float32, c colors.Color, rotationRad float32) {
	if fb.screen == nil {
		return
	}
	b := src.Bounds()
	fb.op.GeoM.Reset()
	fb.op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	fb.op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	fb.op.GeoM.Rotate(float64(rotationRad))
	fb.op.GeoM.Translate(float64(cx), float64(cy))
	p := c.Premultiplied()
	fb.op.ColorScale.Reset()
	fb.op.ColorScale.Scale(p[0], p[1], p[2], p[3])
	fb.op.Filter = ebiten.FilterLinear
	fb.screen.DrawImage(src, &fb.op)
}
