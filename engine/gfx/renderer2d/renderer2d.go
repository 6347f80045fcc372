package renderer2d

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

var (
	//go:embed shaders/quad.vert
	quadVertSrc string
	//go:embed shaders/quad.frag
	quadFragSrc string
)

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

var samplerNames = func() (n [maxTexSlots]string) {
	for i := range n {
		n[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	return n
}()

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches quads between BeginScene and EndScene and submits them
// with as few draw calls as texture slots and capacity allow.
type Renderer2D struct {
	r     core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture
	batch *batch

	vp       [16]float32
	stats    Statistics
	extra    map[string]any
	uniforms map[string]any
	samplers map[string]core.Texture
}

// NewDefault creates a renderer with the built-in batched quad shaders.
func NewDefault(r core.Renderer, maxQuads int) (*Renderer2D, error) {
	return New(r, quadVertSrc, quadFragSrc, maxQuads)
}

// New compiles the quad pipeline and allocates a mesh for maxQuads quads.
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("quad pipeline: %w", err)
	}

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		pipe.Release()
		return nil, fmt.Errorf("white texture: %w", err)
	}

	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		white.Release()
		pipe.Release()
		return nil, fmt.Errorf("quad mesh: %w", err)
	}

	return &Renderer2D{
		r:        r,
		pipe:     pipe,
		mesh:     mesh,
		white:    white,
		batch:    newBatch(maxQuads, white),
		uniforms: make(map[string]any, 4),
		samplers: make(map[string]core.Texture, maxTexSlots),
	}, nil
}

// Release frees the GPU resources owned by the renderer.
func (rd *Renderer2D) Release() {
	rd.mesh.Release()
	rd.white.Release()
	rd.pipe.Release()
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.batch.reset(rd.white)
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the statistics of the last scene.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// SetUniform adds a uniform sent with every draw call until overwritten.
// A nil value removes it.
func (rd *Renderer2D) SetUniform(name string, value any) {
	if value == nil {
		delete(rd.extra, name)
		return
	}
	if rd.extra == nil {
		rd.extra = make(map[string]any)
	}
	rd.extra[name] = value
}

// DrawQuad draws a solid quad centered on x, y.
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.submit(quad{x: x, y: y, w: w, h: h, rot: rotationRad, color: color, u1: 1, v1: 1}, rd.white)
}

// DrawTexturedQuad draws all of tex, multiplied by tint.
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32) {
	rd.submit(quad{x: x, y: y, w: w, h: h, rot: rotationRad, color: tint, u1: 1, v1: 1}, tex)
}

// DrawTexturedQuadUV draws the u0,v0 to u1,v1 region of tex.
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	rd.submit(quad{x: x, y: y, w: w, h: h, rot: rotationRad, color: tint, u0: u0, v0: v0, u1: u1, v1: v1}, tex)
}

func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.DrawTexturedQuadUV(x, y, w, h, sub.Texture, tint, rotationRad, sub.U0, sub.V0, sub.U1, sub.V1)
}

func (rd *Renderer2D) submit(q quad, tex core.Texture) {
	if rd.batch.full() {
		rd.flush()
	}
	slot, ok := rd.batch.slot(tex)
	if !ok {
		rd.flush()
		slot, _ = rd.batch.slot(tex)
	}
	rd.batch.add(q, slot)
	rd.stats.QuadCount++
	rd.stats.TextureCount = max(rd.stats.TextureCount, len(rd.batch.textures))
}

func (rd *Renderer2D) flush() {
	b := rd.batch
	if b.empty() {
		return
	}
	defer b.reset(rd.white)

	if err := rd.r.UpdateMesh(rd.mesh, b.verts, b.inds); err != nil {
		core.Logger().Error("renderer2d: dropping batch", "quads", b.quads, "err", err)
		return
	}

	clear(rd.samplers)
	for i, t := range b.textures {
		rd.samplers[samplerNames[i]] = t
	}
	clear(rd.uniforms)
	rd.uniforms["uVP"] = rd.vp
	for k, v := range rd.extra {
		rd.uniforms[k] = v
	}

	rd.r.Draw(core.DrawCmd{
		Pipe:       rd.pipe,
		Mesh:       rd.mesh,
		IndexCount: len(b.inds),
		Uniforms:   rd.uniforms,
		Samplers:   rd.samplers,
	})
	rd.stats.DrawCalls++
}
