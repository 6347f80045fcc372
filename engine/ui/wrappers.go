package ui

import (
	"math"

	"github.com/hubastard/canopy/engine/geom"
)

// single is embedded by wrappers that own exactly one child.
type single struct {
	Base
	child Widget
}

func (s *single) init(child Widget) {
	s.child = child
	s.children = []Widget{child}
}

func (s *single) Child() Widget { return s.child }

// ------ Padding ------

type Padded struct {
	single
	left, top, right, bottom float64
}

// Padding4 insets child by the given edges.
func Padding4(child Widget, left, top, right, bottom float64) *Padded {
	p := &Padded{left: left, top: top, right: right, bottom: bottom}
	p.init(child)
	return p
}

// Padding insets child by the same amount on every edge.
func Padding(child Widget, all float64) *Padded {
	return Padding4(child, all, all, all, all)
}

// Padding2 insets child horizontally and vertically.
func Padding2(child Widget, horizontal, vertical float64) *Padded {
	return Padding4(child, horizontal, vertical, horizontal, vertical)
}

func (p *Padded) CalcConstraints(cx *ConstraintsContext) Constraints {
	c := cx.ConstraintsOf(p.child)
	c.MinSize = c.MinSize.Add(geom.V(p.left+p.right, p.top+p.bottom))
	return c
}

func (p *Padded) LayoutChildren(cx *LayoutContext) {
	cx.SetPosition(p.child, cx.Position.Inset(p.left, p.top, p.right, p.bottom))
}

// ------ Align ------

// Aligned places its child inside the available rectangle. On an axis where
// the child does not flex it keeps its minimum size and is offset by the
// alignment fraction (0 start, 0.5 center, 1 end).
type Aligned struct {
	single
	align          geom.Vec2
	flexX, flexY   *float64
	maintainAspect bool
}

func AlignTo(child Widget, x, y float64) *Aligned {
	a := &Aligned{align: geom.V(x, y)}
	a.init(child)
	return a
}

func Center(child Widget) *Aligned { return AlignTo(child, 0.5, 0.5) }

// FlexAlign aligns child and overrides the flex it reports on the axes
// where a value is given.
func FlexAlign(child Widget, flexX, flexY *float64, x, y float64) *Aligned {
	a := AlignTo(child, x, y)
	a.flexX, a.flexY = flexX, flexY
	return a
}

// MaintainAspect aligns child and shrinks it to keep the aspect ratio of
// its minimum size.
func MaintainAspect(child Widget, x, y float64) *Aligned {
	a := AlignTo(child, x, y)
	a.maintainAspect = true
	return a
}

func (a *Aligned) CalcConstraints(cx *ConstraintsContext) Constraints {
	c := cx.ConstraintsOf(a.child)
	if a.flexX != nil {
		c.Flex.X = *a.flexX
	}
	if a.flexY != nil {
		c.Flex.Y = *a.flexY
	}
	return c
}

func (a *Aligned) LayoutChildren(cx *LayoutContext) {
	size := cx.Position.Size()
	cc := cx.ConstraintsOf(a.child)
	child := size
	if cc.Flex.X == 0 {
		child.X = math.Min(cc.MinSize.X, size.X)
	}
	if cc.Flex.Y == 0 {
		child.Y = math.Min(cc.MinSize.Y, size.Y)
	}
	if a.maintainAspect && !cc.MinSize.IsZero() && cc.MinSize.Y != 0 {
		aspect := cc.MinSize.X / cc.MinSize.Y
		if child.Y*aspect > child.X {
			child.Y = child.X / aspect
		}
		if child.Y < child.X/aspect {
			child.X = child.Y * aspect
		}
	}
	origin := cx.Position.Min.Add(size.Sub(child).Mul(a.align))
	cx.SetPosition(a.child, geom.Rect{Min: origin, Max: origin.Add(child)})
}

// ------ Constraint override ------

// Override reports fixed constraints regardless of its child.
type Override struct {
	single
	constraints Constraints
}

func ConstraintOverride(child Widget, c Constraints) *Override {
	o := &Override{constraints: c}
	o.init(child)
	return o
}

// FixedSize makes child report exactly w x h and never stretch.
func FixedSize(child Widget, w, h float64) *Override {
	return ConstraintOverride(child, FixedConstraints(w, h))
}

func (o *Override) CalcConstraints(*ConstraintsContext) Constraints { return o.constraints }

// ------ Shrink ------

// Shrunk gives its child the rectangle shrunk by ratio of its size,
// keeping the center.
type Shrunk struct {
	single
	Ratio float64
}

func Shrink(child Widget, ratio float64) *Shrunk {
	s := &Shrunk{Ratio: ratio}
	s.init(child)
	return s
}

func (s *Shrunk) CalcConstraints(cx *ConstraintsContext) Constraints {
	return cx.ConstraintsOf(s.child)
}

func (s *Shrunk) LayoutChildren(cx *LayoutContext) {
	cx.SetPosition(s.child, shrinkRect(cx.Position, s.Ratio))
}

func shrinkRect(r geom.Rect, ratio float64) geom.Rect {
	return r.InsetSymmetric(r.Size().Scale(ratio / 2))
}
