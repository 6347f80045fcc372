package ebitenhost

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hubastard/canopy/engine/core"
)

type touch struct {
	id   int
	x, y float64
}

// snapshot is the polled input state of one tick.
type snapshot struct {
	x, y    float64
	buttons [3]bool
	touches []touch // sorted by id
	keys    map[core.Key]bool
	wheelX  float64
	wheelY  float64
}

var buttonMap = [3]ebiten.MouseButton{
	core.MouseButtonLeft:   ebiten.MouseButtonLeft,
	core.MouseButtonRight:  ebiten.MouseButtonRight,
	core.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

var keyMap = map[core.Key]ebiten.Key{
	core.KeyEscape: ebiten.KeyEscape,
	core.KeySpace:  ebiten.KeySpace,
	core.KeyW:      ebiten.KeyW,
	core.KeyA:      ebiten.KeyA,
	core.KeyS:      ebiten.KeyS,
	core.KeyD:      ebiten.KeyD,
	core.KeyP:      ebiten.KeyP,
	core.KeyF3:     ebiten.KeyF3,
}

// poller turns ebiten's polled input into core events by diffing ticks.
type poller struct {
	prev     snapshot
	touchBuf []ebiten.TouchID
}

func (p *poller) read() snapshot {
	mx, my := ebiten.CursorPosition()
	s := snapshot{x: float64(mx), y: float64(my), keys: make(map[core.Key]bool, len(keyMap))}
	for i, b := range buttonMap {
		s.buttons[i] = ebiten.IsMouseButtonPressed(b)
	}
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		s.touches = append(s.touches, touch{id: int(id), x: float64(tx), y: float64(ty)})
	}
	slices.SortFunc(s.touches, func(a, b touch) int { return a.id - b.id })
	for k, ek := range keyMap {
		s.keys[k] = ebiten.IsKeyPressed(ek)
	}
	s.wheelX, s.wheelY = ebiten.Wheel()
	return s
}

// Poll reads the current input state and emits what changed since the last call.
func (p *poller) Poll(emit func(core.Event)) {
	cur := p.read()
	diffInput(p.prev, cur, emit)
	p.prev = cur
}

func diffInput(prev, cur snapshot, emit func(core.Event)) {
	// Keys come out in enum order; a key missing from cur counts as up.
	keys := slices.Collect(maps.Keys(cur.keys))
	for k := range prev.keys {
		if _, ok := cur.keys[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		if down := cur.keys[k]; down != prev.keys[k] {
			emit(core.EventKey{Key: k, Down: down})
		}
	}
	if cur.x != prev.x || cur.y != prev.y {
		emit(core.EventMouseMove{X: cur.x, Y: cur.y})
	}
	for i, down := range cur.buttons {
		if down == prev.buttons[i] {
			continue
		}
		b := core.MouseButton(i)
		if down {
			emit(core.EventMouseDown{Button: b, X: cur.x, Y: cur.y})
		} else {
			emit(core.EventMouseUp{Button: b, X: cur.x, Y: cur.y})
		}
	}
	if cur.wheelX != 0 || cur.wheelY != 0 {
		emit(core.EventScroll{Xoff: cur.wheelX, Yoff: cur.wheelY})
	}

	for _, t := range cur.touches {
		old, ok := findTouch(prev.touches, t.id)
		switch {
		case !ok:
			emit(core.EventTouchStart{ID: t.id, X: t.x, Y: t.y})
		case old.x != t.x || old.y != t.y:
			emit(core.EventTouchMove{ID: t.id, X: t.x, Y: t.y})
		}
	}
	for _, t := range prev.touches {
		if _, ok := findTouch(cur.touches, t.id); !ok {
			// Ended touches report their last known position.
			emit(core.EventTouchEnd{ID: t.id, X: t.x, Y: t.y})
		}
	}
}

func findTouch(ts []touch, id int) (touch, bool) {
	i, ok := slices.BinarySearchFunc(ts, id, func(t touch, id int) int { return t.id - id })
	if !ok {
		return touch{}, false
	}
	return ts[i], true
}
