package ui

import (
	"slices"
	"sync/atomic"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
)

// ID identifies a widget for the lifetime of the process. IDs are never reused.
// A widget copied by value gets a fresh ID the first time the copy is used.
type ID uint64

var nextID atomic.Uint64

// Constraints is what a widget reports to its parent: the minimum size it
// needs and how eagerly it takes extra space on each axis.
type Constraints struct {
	MinSize geom.Vec2
	Flex    geom.Vec2
}

// DefaultConstraints takes no minimum space and stretches on both axes.
func DefaultConstraints() Constraints {
	return Constraints{Flex: geom.V(1, 1)}
}

// FixedConstraints reports an exact size that never stretches.
func FixedConstraints(w, h float64) Constraints {
	return Constraints{MinSize: geom.V(w, h)}
}

// Widget is a node of the persistent UI tree. Widgets are mutated in place
// between frames; embed Base to get identity, children and no-op defaults.
type Widget interface {
	Node() *Base
	// CalcConstraints runs post-order: every child's constraints are known.
	CalcConstraints(cx *ConstraintsContext) Constraints
	// LayoutChildren runs pre-order and must position every child.
	LayoutChildren(cx *LayoutContext)
	Draw(cx *DrawContext)
	Update(dt float64)
	HandleEvent(ev core.Event)
	WalkChildren(f func(Widget))
}

// Sensor is implemented by interactive widgets.
type Sensor interface {
	Sense() *Sense
}

// noCopy lets go vet's copylocks check flag widgets copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Base must not be copied after first use; widgets are handled by pointer.
type Base struct {
	noCopy   noCopy
	id       ID
	owner    *Base // address id was assigned at
	children []Widget
}

func (b *Base) Node() *Base { return b }

// ID returns the widget identity, assigning one on first use.
func (b *Base) ID() ID {
	if b.id == 0 || b.owner != b {
		b.id = ID(nextID.Add(1))
		b.owner = b
	}
	return b.id
}

func (b *Base) Children() []Widget { return b.children }

// SetChildren replaces the child list. kids is copied.
func (b *Base) SetChildren(kids ...Widget) { b.children = slices.Clone(kids) }

func (b *Base) AddChild(kids ...Widget) {
	b.children = append(slices.Clip(b.children), kids...)
}

// RemoveChild drops w from the child list. Its stored state is discarded at
// the end of the next layout pass.
func (b *Base) RemoveChild(w Widget) bool {
	for i, c := range b.children {
		if c.Node() == w.Node() {
			b.children = slices.Concat(b.children[:i], b.children[i+1:])
			return true
		}
	}
	return false
}

func (b *Base) WalkChildren(f func(Widget)) {
	for _, c := range b.children {
		f(c)
	}
}

// LayoutChildren gives every child the parent's own rectangle.
func (b *Base) LayoutChildren(cx *LayoutContext) {
	for _, c := range b.children {
		cx.SetPosition(c, cx.Position)
	}
}

func (b *Base) Draw(*DrawContext)      {}
func (b *Base) Update(float64)         {}
func (b *Base) HandleEvent(core.Event) {}

// ------ Helper ------

func maxChildConstraint(cx *ConstraintsContext, kids []Widget, pick func(Constraints) float64) float64 {
	var m float64
	for i, c := range kids {
		v := pick(cx.ConstraintsOf(c))
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

func sumChildConstraint(cx *ConstraintsContext, kids []Widget, pick func(Constraints) float64) float64 {
	var s float64
	for _, c := range kids {
		s += pick(cx.ConstraintsOf(c))
	}
	return s
}
