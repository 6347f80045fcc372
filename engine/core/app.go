package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // events not consumed by a layer
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   *LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
