package geom

import "math"

// Vec2 is a 2D vector in UI or pixel space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2         { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2         { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2         { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Scale(s float64) Vec2    { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Div(s float64) Vec2      { return Vec2{v.X / s, v.Y / s} }
func (v Vec2) Max(o Vec2) Vec2         { return Vec2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }
func (v Vec2) Min(o Vec2) Vec2         { return Vec2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }
func (v Vec2) IsZero() bool            { return v.X == 0 && v.Y == 0 }
func (v Vec2) F32() (float32, float32) { return float32(v.X), float32(v.Y) }

// Rect is an axis-aligned rectangle. Y grows downward, so Min is the
// top-left corner.
type Rect struct {
	Min, Max Vec2
}

// RectXYWH builds a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

// RectFromSize returns the rectangle spanning (0,0) to size.
func RectFromSize(size Vec2) Rect { return Rect{Max: size} }

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }
func (r Rect) Center() Vec2    { return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2} }

// Contains reports whether p lies in the half-open rectangle [Min, Max).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Scale multiplies both corners by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Scale(s), Max: r.Max.Scale(s)}
}

// Inset shrinks the rectangle by the given edge amounts. Negative values grow it.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X + left, r.Min.Y + top},
		Max: Vec2{r.Max.X - right, r.Max.Y - bottom},
	}
}

// InsetSymmetric shrinks each axis by d on both sides.
func (r Rect) InsetSymmetric(d Vec2) Rect {
	return r.Inset(d.X, d.Y, d.X, d.Y)
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}
