package core

// Renderer abstraction over the GPU backend.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()

	TextureFactory
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// TextureFactory uploads pixel data. Split out so font and image loading
// can run against any backend, or none.
type TextureFactory interface {
	CreateTexture(desc TextureDesc) (Texture, error)
}

// Texture is an opaque backend texture handle.
type Texture interface {
	Size() (w, h int)
	Release()
}

// Pipeline is a linked shader program plus fixed-function state.
type Pipeline interface {
	Release()
}

// Mesh is a vertex/index buffer pair with a fixed layout.
type Mesh interface {
	Release()
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte // tightly packed, row-major, top-left origin
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd renders the mesh's index range with a pipeline, uniforms and samplers.
// IndexCount of 0 draws every index last uploaded.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}
