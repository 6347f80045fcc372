package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// RendererGL implements core.Renderer on an OpenGL 3.3 core context. It must
// be created and used on the thread that owns the context.
type RendererGL struct {
	win core.Window

	vendor, renderer, version string

	boundProgram uint32
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	r.vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	r.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	r.version = gl.GoStr(gl.GetString(gl.VERSION))
	core.Logger().Info("opengl ready", "vendor", r.vendor, "renderer", r.renderer, "version", r.version)

	gl.Disable(gl.CULL_FACE)
	if r.win != nil {
		r.Resize(r.win.FramebufferSize())
	}
	return nil
}

func (r *RendererGL) GPUVendor() string   { return r.vendor }
func (r *RendererGL) GPURenderer() string { return r.renderer }
func (r *RendererGL) GPUVersion() string  { return r.version }

func (r *RendererGL) Shutdown() {
	gl.UseProgram(0)
	r.boundProgram = 0
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok || p.program == 0 {
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok || m.vao == 0 {
		return
	}

	if r.boundProgram != p.program {
		gl.UseProgram(p.program)
		r.boundProgram = p.program
	}
	p.applyState()

	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), v)
	}
	unit := int32(0)
	for name, t := range cmd.Samplers {
		tex, ok := t.(*texture)
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		if loc := p.location(name); loc >= 0 {
			gl.Uniform1i(loc, unit)
		}
		unit++
	}

	count := int32(cmd.IndexCount)
	if count <= 0 {
		count = m.indexCount
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch u := v.(type) {
	case float32:
		gl.Uniform1f(loc, u)
	case float64:
		gl.Uniform1f(loc, float32(u))
	case int:
		gl.Uniform1i(loc, int32(u))
	case int32:
		gl.Uniform1i(loc, u)
	case bool:
		b := int32(0)
		if u {
			b = 1
		}
		gl.Uniform1i(loc, b)
	case [2]float32:
		gl.Uniform2f(loc, u[0], u[1])
	case [3]float32:
		gl.Uniform3f(loc, u[0], u[1], u[2])
	case [4]float32:
		gl.Uniform4f(loc, u[0], u[1], u[2], u[3])
	case colors.Color:
		gl.Uniform4f(loc, u[0], u[1], u[2], u[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &u[0])
	default:
		core.Logger().Warn("gl: unsupported uniform type", "type", fmt.Sprintf("%T", v))
	}
}
