package main

import (
	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/scene"
)

// ------- A simple 2D Layer demo -------
type Layer2D struct {
	cam    *scene.OrthoCamera2D
	ctrl   *scene.OrthoController2D
	r2d    *renderer2d.Renderer2D
	tex    core.Texture
	player renderer2d.SubTexture2D
	px, py float32
	t      float32
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetZoom(4)
	l.ctrl = scene.NewOrthoController2D(l.cam)
	l.ctrl.MoveSpeed = 64

	tex, err := assets.LoadTexture(e.Renderer, "player.png")
	if err != nil {
		core.Logger().Warn("player texture missing, using checker", "err", err)
		tex, err = checker(e.Renderer, 32, 4)
		if err != nil {
			panic(err)
		}
	}
	l.tex = tex
	l.player = renderer2d.FromRegion(tex, 0, 0, 32, 32)
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	if l.tex != nil {
		l.tex.Release()
	}
}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	renderEnd := profiler.Start("Layer2D.OnRender")

	l.r2d.BeginScene(l.cam.VP())
	{
		l.r2d.DrawSubTexQuad(l.px, l.py, 32, 32, l.player, colors.White, l.t)
	}
	l.r2d.EndScene()

	renderEnd()
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				core.Logger().Info("speedscope dump", "path", path)
			} else {
				core.Logger().Error("profiler dump", "err", err)
			}
			return true
		}
	case core.EventMouseDown:
		// Only clicks the UI layer above did not take arrive here.
		w, h := e.Window.FramebufferSize()
		l.px, l.py = l.cam.Unproject(v.X, v.Y, w, h)
		return true
	case core.EventScroll:
		return l.ctrl.HandleEvent(ev)
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}

// checker builds a size x size texture of alternating cells.
func checker(factory core.TextureFactory, size, cells int) (core.Texture, error) {
	pix := make([]byte, size*size*4)
	cell := size / cells
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(64)
			if (x/cell+y/cell)%2 == 0 {
				v = 220
			}
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	return factory.CreateTexture(core.TextureDesc{
		Width: size, Height: size,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
}
