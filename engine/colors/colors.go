package colors

// Color is straight (non-premultiplied) RGBA in the 0..1 range.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Clamped limits every channel to 0..1.
func (c Color) Clamped() Color {
	for i, v := range c {
		c[i] = min(max(v, 0), 1)
	}
	return c
}

// Premultiplied returns the clamped color with RGB scaled by alpha.
func (c Color) Premultiplied() Color {
	c = c.Clamped()
	return Color{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
}
