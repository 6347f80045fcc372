package scene

import "math"

// OrthoCamera2D provides an orthographic camera with position, rotation, zoom.
type OrthoCamera2D struct {
	Left, Right, Bottom, Top float32
	Near, Far                float32
	X, Y                     float32
	RotationRad              float32
	Zoom                     float32 // 1 = no zoom
	vp                       [16]float32
	dirty                    bool
	pixel                    bool
}

func NewOrtho2D(width, height int) *OrthoCamera2D {
	halfW := float32(width) * 0.5
	halfH := float32(height) * 0.5
	c := &OrthoCamera2D{
		Left: -halfW, Right: halfW,
		Bottom: -halfH, Top: halfH,
		Near: -1, Far: 1,
		Zoom: 1,
	}
	c.Recalculate()
	return c
}

// NewPixelCamera maps world units 1:1 to framebuffer pixels with the origin
// at the top-left corner and Y growing downward, as window and UI
// coordinates do.
func NewPixelCamera(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{Near: -1, Far: 1, Zoom: 1, pixel: true}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	if c.pixel {
		c.Left, c.Right = 0, float32(w)
		c.Bottom, c.Top = float32(h), 0
		c.dirty = true
		return
	}
	halfW := float32(w) * 0.5
	halfH := float32(h) * 0.5
	c.Left, c.Right = -halfW, halfW
	c.Bottom, c.Top = -halfH, halfH
	c.dirty = true
}

// Project maps a world point to normalized device coordinates.
func (c *OrthoCamera2D) Project(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// Unproject maps a framebuffer pixel (origin top-left) of a w x h viewport
// back to world coordinates. It is the inverse of Project followed by the
// NDC to pixel mapping.
func (c *OrthoCamera2D) Unproject(px, py float64, w, h int) (float32, float32) {
	nx := float32(2*px/float64(w) - 1)
	ny := float32(1 - 2*py/float64(h))
	m := c.VP()
	det := m[0]*m[5] - m[4]*m[1]
	if det == 0 {
		return 0, 0
	}
	dx, dy := nx-m[12], ny-m[13]
	return (m[5]*dx - m[4]*dy) / det, (m[0]*dy - m[1]*dx) / det
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) Rotate(dRad float32) { c.RotationRad += dRad; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *OrthoCamera2D) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	// Ortho scaled by Zoom
	z := c.Zoom
	proj := ortho(c.Left/z, c.Right/z, c.Bottom/z, c.Top/z, c.Near, c.Far)

	// Correct view for column-vector math:
	// view = R(-rot) * T(-pos)
	view := mul(
		rotateZ(-c.RotationRad),
		translate(-c.X, -c.Y, 0),
	)

	c.vp = mul(proj, view)
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func rotateZ(a float32) [16]float32 {
	c := float32(math.Cos(float64(a)))
	s := float32(math.Sin(float64(a)))
	return [16]float32{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns a*b.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = a[r+0]*b[0+4*c] + a[r+4]*b[1+4*c] + a[r+8]*b[2+4*c] + a[r+12]*b[3+4*c]
		}
	}
	return out
}
