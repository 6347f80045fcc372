package ui

import (
	"math"
	"slices"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/geom"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

// Flex stacks its children along one axis. Space beyond the children's
// minimum sizes goes to children in proportion to their flex; when no child
// flexes, mainAlign positions the group instead.
type Flex struct {
	Base
	flow       LayoutDirection
	gap        float64
	mainAlign  Align
	crossAlign Align
}

// Column lays children out top to bottom.
func Column(children ...Widget) *Flex {
	f := &Flex{flow: LayoutVertical, crossAlign: AlignStretch}
	f.children = slices.Clone(children)
	return f
}

// Row lays children out left to right.
func Row(children ...Widget) *Flex {
	f := &Flex{flow: LayoutHorizontal, crossAlign: AlignStretch}
	f.children = slices.Clone(children)
	return f
}

func (l *Flex) Gap(g float64) *Flex        { l.gap = g; return l }
func (l *Flex) AlignMain(a Align) *Flex    { l.mainAlign = a; return l }
func (l *Flex) AlignCross(a Align) *Flex   { l.crossAlign = a; return l }
func (l *Flex) Direction() LayoutDirection { return l.flow }

// main and cross pick the axis components for this flex direction.
func (l *Flex) main(v geom.Vec2) float64 {
	if l.flow == LayoutVertical {
		return v.Y
	}
	return v.X
}

func (l *Flex) cross(v geom.Vec2) float64 {
	if l.flow == LayoutVertical {
		return v.X
	}
	return v.Y
}

func (l *Flex) vec(main, cross float64) geom.Vec2 {
	if l.flow == LayoutVertical {
		return geom.V(cross, main)
	}
	return geom.V(main, cross)
}

func (l *Flex) gapTotal() float64 {
	if len(l.children) > 1 {
		return l.gap * float64(len(l.children)-1)
	}
	return 0
}

func (l *Flex) CalcConstraints(cx *ConstraintsContext) Constraints {
	kids := l.children
	minMain := sumChildConstraint(cx, kids, func(c Constraints) float64 { return l.main(c.MinSize) }) + l.gapTotal()
	minCross := maxChildConstraint(cx, kids, func(c Constraints) float64 { return l.cross(c.MinSize) })
	flexMain := sumChildConstraint(cx, kids, func(c Constraints) float64 { return l.main(c.Flex) })
	flexCross := maxChildConstraint(cx, kids, func(c Constraints) float64 { return l.cross(c.Flex) })
	return Constraints{
		MinSize: l.vec(minMain, minCross),
		Flex:    l.vec(flexMain, flexCross),
	}
}

func (l *Flex) LayoutChildren(cx *LayoutContext) {
	kids := l.children
	if len(kids) == 0 {
		return
	}
	size := cx.Position.Size()
	mainSize, crossSize := l.main(size), l.cross(size)

	var totalFlex, minMain float64
	for _, c := range kids {
		cc := cx.ConstraintsOf(c)
		totalFlex += l.main(cc.Flex)
		minMain += l.main(cc.MinSize)
	}
	free := math.Max(0, mainSize-minMain-l.gapTotal())

	var perFlex, cursor float64
	if totalFlex > 0 {
		perFlex = free / totalFlex
	} else {
		switch l.mainAlign {
		case AlignCenter:
			cursor = free * 0.5
		case AlignEnd:
			cursor = free
		}
	}

	for i, c := range kids {
		cc := cx.ConstraintsOf(c)
		childMain := l.main(cc.MinSize) + l.main(cc.Flex)*perFlex

		childCross := crossSize
		if l.crossAlign != AlignStretch && l.cross(cc.Flex) == 0 {
			childCross = math.Min(l.cross(cc.MinSize), crossSize)
		}
		var crossOffset float64
		switch l.crossAlign {
		case AlignCenter:
			crossOffset = (crossSize - childCross) / 2
		case AlignEnd:
			crossOffset = crossSize - childCross
		}

		origin := cx.Position.Min.Add(l.vec(cursor, crossOffset))
		cx.SetPosition(c, geom.Rect{Min: origin, Max: origin.Add(l.vec(childMain, childCross))})

		cursor += childMain
		if i < len(kids)-1 {
			cursor += l.gap
		}
	}
}

// Stack places every child over the full rectangle, later children on top.
type Stack struct {
	Base
}

func NewStack(children ...Widget) *Stack {
	s := &Stack{}
	s.children = slices.Clone(children)
	return s
}

func (s *Stack) CalcConstraints(cx *ConstraintsContext) Constraints {
	kids := s.children
	return Constraints{
		MinSize: geom.V(
			maxChildConstraint(cx, kids, func(c Constraints) float64 { return c.MinSize.X }),
			maxChildConstraint(cx, kids, func(c Constraints) float64 { return c.MinSize.Y }),
		),
		Flex: geom.V(
			maxChildConstraint(cx, kids, func(c Constraints) float64 { return c.Flex.X }),
			maxChildConstraint(cx, kids, func(c Constraints) float64 { return c.Flex.Y }),
		),
	}
}

// Background puts bg behind w.
func Background(w Widget, bg Widget) *Stack { return NewStack(bg, w) }

// BackgroundColor puts a solid color behind w.
func BackgroundColor(w Widget, c colors.Color) *Stack { return NewStack(NewColorBox(c), w) }
