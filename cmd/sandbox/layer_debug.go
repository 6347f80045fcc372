package main

import (
	"fmt"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/ui"
)

// LayerDebug overlays frame, renderer and memory statistics. F3 toggles it.
type LayerDebug struct {
	*ui.Layer
	stats         *renderer2d.Statistics
	visible       bool
	frameDuration float32
	tick          int

	frame, timing                        *ui.Text
	drawCalls, quads, vertices, textures *ui.Text
	usage, allocs, goroutines, cpus      *ui.Text
	vendor, renderer, version            *ui.Text
}

func NewLayerDebug(theme *ui.Theme, target ui.Target, stats *renderer2d.Statistics) *LayerDebug {
	l := &LayerDebug{stats: stats, visible: true}
	size := theme.TextSize * 0.6
	line := func(dst **ui.Text) ui.Widget {
		*dst = ui.NewText("").FontSize(size)
		return ui.Padding4(*dst, size, 0, 0, 0)
	}
	header := func(s string) ui.Widget {
		return ui.NewText(s).FontSize(size).Color(colors.Yellow)
	}

	panel := ui.Column(
		line(&l.frame),
		line(&l.timing),
		header("2D Renderer"),
		line(&l.drawCalls),
		line(&l.quads),
		line(&l.vertices),
		line(&l.textures),
		header("Memory"),
		line(&l.usage),
		line(&l.allocs),
		line(&l.goroutines),
		header("CPU"),
		line(&l.cpus),
		header("GPU"),
		line(&l.vendor),
		line(&l.renderer),
		line(&l.version),
	).Gap(size / 4)

	root := ui.AlignTo(
		ui.Padding(ui.BackgroundColor(ui.Padding(panel, size), colors.Black.WithAlpha(0.5)), 16),
		0, 0,
	)
	ctrl := ui.NewController(theme)
	l.Layer = ui.NewLayer(ctrl, root, target)
	return l
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.Layer.OnAttach(e)
	l.vendor.SetText("Vendor: " + e.Renderer.GPUVendor())
	l.renderer.SetText("Renderer: " + e.Renderer.GPURenderer())
	l.version.SetText("Version: " + e.Renderer.GPUVersion())
	l.cpus.SetText(fmt.Sprintf("Count: %d", profiler.NumCPU()))
}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	fps := float32(0)
	if l.frameDuration > 0 {
		fps = 1000.0 / l.frameDuration
	}
	mem := profiler.ReadStats()
	l.frame.SetText(fmt.Sprintf("Frame: %d", l.tick))
	l.timing.SetText(fmt.Sprintf("%2.3f ms (%.2f FPS)", l.frameDuration, fps))
	l.drawCalls.SetText(fmt.Sprintf("Draw Calls: %d", l.stats.DrawCalls))
	l.quads.SetText(fmt.Sprintf("Quads: %d", l.stats.QuadCount))
	l.vertices.SetText(fmt.Sprintf("Vertices: %d", l.stats.TotalVertexCount()))
	l.textures.SetText(fmt.Sprintf("Textures: %d", l.stats.TextureCount))
	l.usage.SetText(fmt.Sprintf("Usage: %.3f MB", float64(mem.HeapAlloc)/(1<<20)))
	l.allocs.SetText(fmt.Sprintf("Allocs: %d", mem.Mallocs))
	l.goroutines.SetText(fmt.Sprintf("Goroutines: %d", mem.Goroutines))

	l.Layer.OnUpdate(e, dt)
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if !l.visible {
		return
	}
	scopeRender := profiler.Start("LayerDebug.OnRender")
	l.Layer.OnRender(e, alpha)
	scopeRender()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyF3 {
		l.visible = !l.visible
		return true
	}
	if _, ok := ev.(core.EventResize); ok {
		return l.Layer.OnEvent(e, ev)
	}
	// The overlay is passive; input goes to the layers below.
	return false
}
