package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/canopy/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// Must be called on main thread before any GL calls. The GL context is made
// current; the renderer loads the GL entry points.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &GLFWWindow{w: win, onEv: onEvent}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		x, y = gw.toPixels(x, y)
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		x, y := gw.toPixels(w.GetCursorPos())
		switch action {
		case glfw.Press:
			gw.emit(core.EventMouseDown{Button: b, X: x, Y: y})
		case glfw.Release:
			gw.emit(core.EventMouseUp{Button: b, X: x, Y: y})
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// toPixels converts window coordinates to framebuffer pixels, which differ
// on high-DPI displays.
func (g *GLFWWindow) toPixels(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return x, y
	}
	return x * float64(fw) / float64(ww), y * float64(fh) / float64(wh)
}

// Destroy closes the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyP:
		return core.KeyP
	case glfw.KeyF3:
		return core.KeyF3
	default:
		return core.KeyUnknown
	}
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return core.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseButtonMiddle, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
