package ui

import (
	"fmt"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
)

// slotList holds one widget's persistent state cells, consumed in call order.
type slotList struct {
	cells []any
	next  int
}

// store maps widget identity to per-pass constraints and positions, and to
// the state cells that outlive a pass.
type store struct {
	constraintsByID map[ID]Constraints
	positionsByID   map[ID]geom.Rect
	slotsByID       map[ID]*slotList
}

func newStore() *store {
	return &store{
		constraintsByID: make(map[ID]Constraints, 64),
		positionsByID:   make(map[ID]geom.Rect, 64),
		slotsByID:       make(map[ID]*slotList, 16),
	}
}

func (s *store) constraints(w Widget) Constraints {
	c, ok := s.constraintsByID[w.Node().ID()]
	if !ok {
		panic(fmt.Sprintf("ui: constraints of %T read before they were computed this pass", w))
	}
	return c
}

func (s *store) setConstraints(w Widget, c Constraints) {
	s.constraintsByID[w.Node().ID()] = c
}

func (s *store) position(w Widget) geom.Rect {
	r, ok := s.positionsByID[w.Node().ID()]
	if !ok {
		panic(fmt.Sprintf("ui: %T has no position; its parent's LayoutChildren did not set one", w))
	}
	return r
}

func (s *store) setPosition(w Widget, r geom.Rect) {
	s.positionsByID[w.Node().ID()] = r
}

func (s *store) scalePositions(scale float64) {
	if scale == 1 {
		return
	}
	for id, r := range s.positionsByID {
		s.positionsByID[id] = r.Scale(scale)
	}
}

func (s *store) slotsFor(w Widget) *slotList {
	id := w.Node().ID()
	l := s.slotsByID[id]
	if l == nil {
		l = &slotList{}
		s.slotsByID[id] = l
	}
	return l
}

// beginPass clears everything computed by the previous pass and rewinds the
// state call counters.
func (s *store) beginPass() {
	clear(s.constraintsByID)
	clear(s.positionsByID)
	for _, l := range s.slotsByID {
		l.next = 0
	}
}

// endPass drops state cells past the number requested this pass.
func (s *store) endPass() {
	for id, l := range s.slotsByID {
		if l.next == 0 {
			delete(s.slotsByID, id)
			continue
		}
		if l.next < len(l.cells) {
			core.Logger().Debug("ui: dropping unused state", "widget", id, "kept", l.next, "dropped", len(l.cells)-l.next)
			clear(l.cells[l.next:])
			l.cells = l.cells[:l.next]
		}
		l.next = 0
	}
}

// StateScope is satisfied by the contexts in which a widget may request
// persistent state: *ConstraintsContext and *LayoutContext.
type StateScope interface {
	slots() *slotList
}

// StateWith returns the widget's next persistent state cell. The Nth call made
// for a widget during a layout pass always yields the Nth cell; it is created
// with init the first time, and re-created if it held a different type.
// Cells the widget stops requesting are dropped at the end of the pass.
//
// The returned pointer stays valid across frames while the widget keeps
// requesting the cell with the same type at the same position.
func StateWith[T any](scope StateScope, init func() T) *T {
	l := scope.slots()
	if l.next >= len(l.cells) {
		v := init()
		l.cells = append(l.cells, &v)
	} else if _, ok := l.cells[l.next].(*T); !ok {
		core.Logger().Debug("ui: state type changed, reinitializing", "index", l.next, "old", fmt.Sprintf("%T", l.cells[l.next]))
		v := init()
		l.cells[l.next] = &v
	}
	p := l.cells[l.next].(*T)
	l.next++
	return p
}

// State is StateWith initialized to T's zero value.
func State[T any](scope StateScope) *T {
	return StateWith(scope, func() T {
		var zero T
		return zero
	})
}
