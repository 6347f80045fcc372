package core

// Event model. Positions are in framebuffer pixels, origin top-left.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseDown struct {
	Button MouseButton
	X, Y   float64
}

func (EventMouseDown) isEvent() {}

type EventMouseUp struct {
	Button MouseButton
	X, Y   float64
}

func (EventMouseUp) isEvent() {}

// Touch events carry a single touch point.
type EventTouchStart struct {
	ID   int
	X, Y float64
}

func (EventTouchStart) isEvent() {}

type EventTouchMove struct {
	ID   int
	X, Y float64
}

func (EventTouchMove) isEvent() {}

type EventTouchEnd struct {
	ID   int
	X, Y float64
}

func (EventTouchEnd) isEvent() {}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyF3
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
