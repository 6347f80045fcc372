package scene

import "github.com/hubastard/canopy/engine/core"

// OrthoController2D pans a camera with WASD and zooms it with the scroll
// wheel. MoveSpeed is in world units per second; each wheel notch scales
// the zoom by ZoomStep.
type OrthoController2D struct {
	MoveSpeed float32
	ZoomStep  float32
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{MoveSpeed: 1, ZoomStep: 1.1, Camera: cam}
}

var panKeys = [...]struct {
	key    core.Key
	dx, dy float32
}{
	{core.KeyW, 0, 1},
	{core.KeyS, 0, -1},
	{core.KeyA, -1, 0},
	{core.KeyD, 1, 0},
}

func (cc *OrthoController2D) Update(in *core.Input, dt float32) {
	step := cc.MoveSpeed * dt
	for _, k := range panKeys {
		if in.IsKeyDown(k.key) {
			cc.Camera.Move(k.dx*step, k.dy*step)
		}
	}
}

// HandleEvent zooms on scroll events and reports whether it used ev.
func (cc *OrthoController2D) HandleEvent(ev core.Event) bool {
	s, ok := ev.(core.EventScroll)
	if !ok || s.Yoff == 0 {
		return false
	}
	z := cc.Camera.Zoom
	if s.Yoff > 0 {
		z *= cc.ZoomStep
	} else {
		z /= cc.ZoomStep
	}
	cc.Camera.SetZoom(z)
	return true
}
