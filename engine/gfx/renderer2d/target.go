package renderer2d

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/scene"
)

// Target draws into the window framebuffer in pixel coordinates, origin at
// the top-left. It is what UI layers render into.
type Target struct {
	rd   *Renderer2D
	cam  *scene.OrthoCamera2D
	size func() (int, int)
}

// NewTarget batches through rd. size reports the current framebuffer size.
func NewTarget(rd *Renderer2D, size func() (int, int)) *Target {
	w, h := size()
	return &Target{rd: rd, cam: scene.NewPixelCamera(w, h), size: size}
}

func (t *Target) Size() (int, int) { return t.size() }

func (t *Target) BeginFrame() {
	w, h := t.size()
	t.cam.SetViewportPixels(w, h)
	t.rd.BeginScene(t.cam.VP())
}

func (t *Target) EndFrame() { t.rd.EndScene() }

func (t *Target) DrawQuad(cx, cy, w, h float32, color colors.Color, rotationRad float32) {
	t.rd.DrawQuad(cx, cy, w, h, color, rotationRad)
}

func (t *Target) DrawTexturedQuadUV(cx, cy, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	t.rd.DrawTexturedQuadUV(cx, cy, w, h, tex, tint, rotationRad, u0, v0, u1, v1)
}
