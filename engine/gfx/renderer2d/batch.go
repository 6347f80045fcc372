package renderer2d

import (
	"math"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	vStride      = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// quad is one centered, optionally rotated rectangle with a UV sub-rect.
type quad struct {
	x, y, w, h     float32
	rot            float32
	color          colors.Color
	u0, v0, u1, v1 float32
}

// batch accumulates quads until it runs out of room or texture slots.
// Slot 0 always holds the white texture used by solid quads.
type batch struct {
	verts    []float32
	inds     []uint32
	textures []core.Texture
	quads    int
	capacity int
}

func newBatch(capacity int, white core.Texture) *batch {
	b := &batch{
		verts:    make([]float32, 0, capacity*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, capacity*indsPerQuad),
		textures: make([]core.Texture, 0, maxTexSlots),
		capacity: capacity,
	}
	b.reset(white)
	return b
}

func (b *batch) reset(white core.Texture) {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	clear(b.textures)
	b.textures = append(b.textures[:0], white)
	b.quads = 0
}

func (b *batch) empty() bool { return b.quads == 0 }
func (b *batch) full() bool  { return b.quads >= b.capacity }

// slot returns the sampler index of tex, adding it when there is room.
func (b *batch) slot(tex core.Texture) (int, bool) {
	for i, t := range b.textures {
		if t == tex {
			return i, true
		}
	}
	if len(b.textures) == maxTexSlots {
		return 0, false
	}
	b.textures = append(b.textures, tex)
	return len(b.textures) - 1, true
}

func (b *batch) add(q quad, slot int) {
	hw, hh := q.w*0.5, q.h*0.5
	// TL, TR, BL, BR. Positive y points down, so the top edge is at -hh.
	corners := [4][4]float32{
		{-hw, -hh, q.u0, q.v0},
		{hw, -hh, q.u1, q.v0},
		{-hw, hh, q.u0, q.v1},
		{hw, hh, q.u1, q.v1},
	}
	sin, cos := math.Sincos(float64(q.rot))
	c, s := float32(cos), float32(sin)
	first := uint32(len(b.verts) / vStride)

	for _, p := range corners {
		b.verts = append(b.verts,
			p[0]*c-p[1]*s+q.x, p[0]*s+p[1]*c+q.y,
			q.color[0], q.color[1], q.color[2], q.color[3],
			p[2], p[3],
			float32(slot),
		)
	}
	b.inds = append(b.inds,
		first, first+2, first+1,
		first+1, first+2, first+3,
	)
	b.quads++
}
