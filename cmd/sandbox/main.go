package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/canopy/engine/config"
	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/ui"
	"github.com/hubastard/canopy/internal/demo"
)

type App struct {
	cfg        *config.Config
	lastFrame  time.Time
	tick       int
	r2d        *renderer2d.Renderer2D
	stats      renderer2d.Statistics
	font       *text.Font
	layer      *Layer2D
	uiLayer    *ui.Layer
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(a.cfg.Profiler.Capacity)

	var err error
	a.r2d, err = renderer2d.NewDefault(e.Renderer, 10000)
	if err != nil {
		panic(err)
	}

	if a.cfg.UI.Font != "" {
		a.font, err = text.LoadTTF(e.Renderer, a.cfg.UI.Font, a.cfg.UI.FontAtlasPx)
	} else {
		a.font, err = text.Default(e.Renderer, a.cfg.UI.FontAtlasPx)
	}
	if err != nil {
		panic(err)
	}

	theme := demo.Theme(a.cfg.UI.Theme, a.font, a.cfg.UI.TextSize)
	target := renderer2d.NewTarget(a.r2d, e.Window.FramebufferSize)

	a.layer = &Layer2D{r2d: a.r2d}
	e.Layers.Push(a.layer)

	ctrl := ui.NewController(theme).TargetResolution(a.cfg.UI.TargetWidth, a.cfg.UI.TargetHeight)
	panel := demo.New(theme, e.Window.RequestClose)
	a.uiLayer = ui.NewLayer(ctrl, panel.Root, target)
	e.Layers.Push(a.uiLayer)

	a.debugLayer = NewLayerDebug(theme, target, &a.stats)
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++
	a.debugLayer.tick = a.tick
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
	}
	a.lastFrame = now
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Close()
	a.r2d.Release()
}

func main() {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		log.Fatal(err)
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg.ToCore(), newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
