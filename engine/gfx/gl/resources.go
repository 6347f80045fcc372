package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/core"
)

// ------ textures ------

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d", desc.Width, desc.Height, want, len(desc.Pixels))
	}
	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.WrapV))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func filter(name string) int32 {
	if name == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrap(name string) int32 {
	if name == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// ------ meshes ------

type mesh struct {
	vao, vbo, ebo uint32
	vertCap       int // floats
	indCap        int
	indexCount    int32
}

func (m *mesh) Release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = mesh{}
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if desc.Layout.Stride <= 0 {
		return nil, fmt.Errorf("mesh layout needs a stride")
	}
	m := &mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, ptrOrNil(desc.Vertices), gl.DYNAMIC_DRAW)
	m.vertCap = len(desc.Vertices)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, ptrOrNil(desc.Indices), gl.DYNAMIC_DRAW)
	m.indCap = len(desc.Indices)
	m.indexCount = int32(len(desc.Indices))

	for _, a := range desc.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			m.Release()
			return nil, fmt.Errorf("unsupported attribute type %d at location %d", a.Type, a.Location)
		}
		loc := uint32(a.Location)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(a.Size), gl.FLOAT, false, int32(desc.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

// UpdateMesh replaces the mesh contents, growing its buffers when needed.
func (r *RendererGL) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := cm.(*mesh)
	if !ok || m.vao == 0 {
		return fmt.Errorf("update of foreign or released mesh")
	}
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > m.vertCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		m.vertCap = len(vertices)
	} else if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(indices) > m.indCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)
		m.indCap = len(indices)
	} else if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	}
	m.indexCount = int32(len(indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func ptrOrNil[T float32 | uint32](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}
