package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
)

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	locations map[string]int32
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(assets.NullTerminated(desc.VertexSource), assets.NullTerminated(desc.FragmentSource))
	if err != nil {
		return nil, err
	}
	return &pipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		locations: make(map[string]int32),
	}, nil
}

func (p *pipeline) Release() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

// location caches uniform lookups; missing uniforms report -1.
func (p *pipeline) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *pipeline) applyState() {
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment: %w", err)
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
