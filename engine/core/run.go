package core

import (
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	log := Logger()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Layers:   &LayerStack{},
		start:    time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		if r, ok := ev.(EventResize); ok {
			if r.W < 1 || r.H < 1 {
				return
			}
			rend.Resize(r.W, r.H)
		}
		if eng.Layers.Dispatch(eng, ev) {
			// Releases still reach Input so held-state never sticks.
			if _, ok := ev.(EventMouseUp); ok {
				eng.Input.Handle(ev)
			}
			return
		}
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
	})

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })
	log.Info("engine started", "title", cfg.Title, "width", w, "height", h)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		dt := float64(tick) / float64(time.Second)
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		// Present
		win.SwapBuffers()
	}

	eng.Layers.ForEach(func(l Layer) { l.OnDetach(eng) })
	app.OnShutdown(eng)
	log.Info("engine exit", "uptime", eng.Uptime())
	return nil
}
