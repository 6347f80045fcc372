package ui

import (
	"math"
	"testing"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/text"
)

func TestButtonOnClick(t *testing.T) {
	clicks := 0
	b := NewButton("ok").OnClick(func() { clicks++ })
	c := NewController(Dark(nil))
	c.Resize(100, 40)

	c.HandleEvent(b, mouseDown(50, 20))
	c.HandleEvent(b, mouseUp(50, 20))
	c.HandleEvent(b, mouseMove(50, 20))

	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if b.WasClicked() {
		t.Fatal("OnClick should consume the click")
	}
}

func TestButtonWasClicked(t *testing.T) {
	b := NewButton("ok")
	c := NewController(Dark(nil))
	c.Resize(100, 40)

	c.HandleEvent(b, mouseDown(50, 20))
	c.HandleEvent(b, mouseUp(50, 20))
	if !b.WasClicked() {
		t.Fatal("expected click")
	}
	if b.WasClicked() {
		t.Fatal("click not consumed")
	}
}

func TestButtonShrinksLabelWhilePressed(t *testing.T) {
	b := NewButton("ok")
	c := NewController(Dark(nil))
	c.Resize(100, 40)

	c.Layout(b)
	if got := c.Position(b.Label()); got != geom.RectXYWH(0, 0, 100, 40) {
		t.Fatalf("idle label = %v", got)
	}

	c.HandleEvent(b, mouseDown(50, 20))
	c.Update(b, 1)
	c.Layout(b)
	want := geom.Rect{Min: geom.V(12.5, 5), Max: geom.V(87.5, 35)}
	if got := c.Position(b.Label()); got != want {
		t.Fatalf("pressed label = %v, want %v", got, want)
	}

	c.HandleEvent(b, mouseUp(50, 20))
	c.Update(b, 1)
	c.Layout(b)
	if got := c.Position(b.Label()); got != geom.RectXYWH(0, 0, 100, 40) {
		t.Fatalf("released label = %v", got)
	}
}

func TestButtonPressAnimationIsGradual(t *testing.T) {
	b := NewButton("ok")
	c := NewController(Dark(nil))
	c.Resize(100, 40)

	c.HandleEvent(b, mouseDown(50, 20))
	c.Update(b, pressDuration/4)
	if r := b.anim.ratio; r <= 0 || r >= c.Theme().PressRatio {
		t.Fatalf("ratio mid-animation = %v", r)
	}
}

func TestButtonHoverDrawsUnderline(t *testing.T) {
	b := NewButton("ok")
	th := Dark(nil)
	c := NewController(th)
	fb := &recordingFB{w: 100, h: 32}

	c.Draw(b, fb)
	if len(fb.quads) != 0 {
		t.Fatalf("idle button drew %d quads", len(fb.quads))
	}

	c.HandleEvent(b, mouseMove(10, 10))
	c.Draw(b, fb)
	if len(fb.quads) != 1 {
		t.Fatalf("hovered button drew %d quads, want 1", len(fb.quads))
	}
	q := fb.quads[0]
	if q.color != th.HoverColor || q.rect != geom.RectXYWH(0, 31, 100, 1) {
		t.Fatalf("underline = %+v", q)
	}
	if !b.Label().hasFallback || b.Label().fallback != th.HoverColor {
		t.Fatal("hovered label not highlighted")
	}
}

func TestSliderDrag(t *testing.T) {
	var changes []float64
	s := NewSlider(0, 0, 10).OnChange(func(v float64) { changes = append(changes, v) })
	c := NewController(Dark(nil))
	c.Resize(110, 10)

	tests := []struct {
		name string
		ev   core.Event
		want float64
	}{
		{"press at start", mouseDown(5, 5), 0},
		{"drag to middle", mouseMove(60, 5), 5.5},
		{"drag past end clamps", mouseMove(500, 5), 10},
		{"release", mouseUp(500, 5), 10},
		{"move without capture", mouseMove(5, 5), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.HandleEvent(s, tt.ev)
			if math.Abs(s.Value()-tt.want) > 1e-9 {
				t.Fatalf("value = %v, want %v", s.Value(), tt.want)
			}
		})
	}
	if len(changes) != 3 {
		t.Fatalf("onChange called %d times, want 3", len(changes))
	}
}

func TestSliderTickAnimation(t *testing.T) {
	s := NewSlider(0.5, 0, 1)
	c := NewController(Dark(nil))
	c.Resize(100, 10)

	c.HandleEvent(s, mouseMove(50, 5))
	c.Update(s, 0.01)
	if want := 1.0/6 + 0.05; math.Abs(s.tickRadius-want) > 1e-9 {
		t.Fatalf("tick radius = %v, want %v", s.tickRadius, want)
	}
	c.Update(s, 1)
	if math.Abs(s.tickRadius-0.5) > 1e-9 {
		t.Fatalf("tick radius = %v, want 0.5", s.tickRadius)
	}

	c.HandleEvent(s, mouseMove(500, 5))
	c.Update(s, 1)
	if math.Abs(s.tickRadius-1.0/6) > 1e-9 {
		t.Fatalf("tick radius = %v, want 1/6", s.tickRadius)
	}
}

func TestSliderSetValueClamps(t *testing.T) {
	s := NewSlider(0, -1, 1)
	s.SetValue(3)
	if s.Value() != 1 {
		t.Fatalf("value = %v", s.Value())
	}
}

func TestColorBoxDraw(t *testing.T) {
	box := Divider(colors.Red, 10)
	invisible := ConstraintOverride(NewColorBox(colors.Color{1, 1, 1, 0}), DefaultConstraints())
	root := Row(box, invisible)
	c := NewController(Dark(nil))
	fb := &recordingFB{w: 20, h: 10}
	c.Draw(root, fb)

	if len(fb.quads) != 1 {
		t.Fatalf("drew %d quads, want 1", len(fb.quads))
	}
	if fb.quads[0].rect != geom.RectXYWH(0, 0, 10, 10) || fb.quads[0].color != colors.Red {
		t.Fatalf("quad = %+v", fb.quads[0])
	}
}

type fakeTexture struct{ w, h int }

func (t fakeTexture) Size() (int, int) { return t.w, t.h }
func (fakeTexture) Release()           {}

func TestTextureBoxUsesTextureSize(t *testing.T) {
	box := NewTextureBox(fakeTexture{16, 8})
	c := NewController(Dark(nil))
	c.Layout(box)
	if got := c.Constraints(box).MinSize; got != geom.V(16, 8) {
		t.Fatalf("min size = %v", got)
	}
	box.SizeHint(4, 4)
	c.Layout(box)
	if got := c.Constraints(box).MinSize; got != geom.V(4, 4) {
		t.Fatalf("hinted min size = %v", got)
	}
}

func TestTextWithoutFont(t *testing.T) {
	txt := NewText("two\nlines").FontSize(10)
	c := NewController(Dark(nil))
	c.Layout(txt)
	if got := c.Constraints(txt); got != (Constraints{MinSize: geom.V(0, 20)}) {
		t.Fatalf("constraints = %+v", got)
	}
}

func TestLayerForwardsToController(t *testing.T) {
	s := newSensing("s")
	fb := &recordingFB{w: 10, h: 10}
	c := NewController(Dark(nil))
	l := NewLayer(c, s, fb)

	if l.OnEvent(nil, core.EventResize{W: 10, H: 10}) {
		t.Fatal("resize must not be consumed")
	}
	if c.Size() != geom.V(10, 10) {
		t.Fatalf("size after resize = %v", c.Size())
	}
	if !l.OnEvent(nil, mouseDown(5, 5)) {
		t.Fatal("press on a widget should be consumed")
	}
	l.OnUpdate(nil, 0.1)
	if s.updates != 1 {
		t.Fatalf("updates = %d", s.updates)
	}
	l.OnRender(nil, 0)
	if fb.frames != 1 || fb.open || s.draws != 1 {
		t.Fatalf("frames %d open %v draws %d", fb.frames, fb.open, s.draws)
	}
}

type fakeFactory struct{}

func (fakeFactory) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	return fakeTexture{d.Width, d.Height}, nil
}

func TestButtonKeepsExplicitLabelColor(t *testing.T) {
	font, err := text.Default(fakeFactory{}, 16)
	if err != nil {
		t.Fatalf("font: %v", err)
	}
	th := Dark(font)
	tests := []struct {
		name  string
		setup func(b *Button)
		want  colors.Color
	}{
		{"theme colors", func(*Button) {}, th.HoverColor},
		{"explicit color", func(b *Button) { b.Label().Color(colors.Red) }, colors.Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton("ok")
			tt.setup(b)
			c := NewController(th)
			fb := &recordingFB{w: 100, h: 32}
			c.Resize(100, 32)
			c.HandleEvent(b, mouseMove(10, 10))
			c.Draw(b, fb)

			glyphs := 0
			for _, q := range fb.quads {
				if q.tex == nil {
					continue
				}
				glyphs++
				if q.color != tt.want {
					t.Fatalf("glyph color = %v, want %v", q.color, tt.want)
				}
			}
			if glyphs == 0 {
				t.Fatal("label drew no glyphs")
			}
		})
	}
}

func TestTextureButtonClickAndTint(t *testing.T) {
	tex := fakeTexture{8, 8}
	clicks := 0
	b := NewTextureButton(tex).OnClick(func() { clicks++ })
	th := Dark(nil)
	c := NewController(th)
	fb := &recordingFB{w: 40, h: 40}

	c.Draw(b, fb)
	if len(fb.quads) != 1 || fb.quads[0].color != th.UsableColor || fb.quads[0].tex != core.Texture(tex) {
		t.Fatalf("idle draw = %+v", fb.quads)
	}

	c.HandleEvent(b, mouseMove(20, 20))
	c.HandleEvent(b, mouseDown(20, 20))
	fb.quads = nil
	c.Draw(b, fb)
	want := geom.Rect{Min: geom.V(5, 5), Max: geom.V(35, 35)}
	if q := fb.quads[0]; q.color != th.HoverColor || q.rect != want {
		t.Fatalf("pressed draw = %+v", q)
	}

	c.HandleEvent(b, mouseUp(20, 20))
	if clicks != 1 {
		t.Fatalf("clicks = %d", clicks)
	}
}

func TestTextureButtonSwapSpins(t *testing.T) {
	first, second := fakeTexture{8, 8}, fakeTexture{4, 4}
	b := NewTextureButton(first)
	c := NewController(Dark(nil))
	c.Resize(10, 10)

	if b.Angle() != 0 || b.Texture() != core.Texture(first) {
		t.Fatal("button should start at rest on its texture")
	}
	b.Swap(second)
	if b.Texture() != core.Texture(first) {
		t.Fatal("swap must keep the old texture until halfway")
	}

	c.Update(b, 0.1) // spin 0.4
	if b.Texture() != core.Texture(first) || b.Angle() >= 0 {
		t.Fatalf("early spin: tex %v angle %v", b.Texture(), b.Angle())
	}
	c.Update(b, 0.05) // spin 0.6
	if b.Texture() != core.Texture(second) {
		t.Fatal("texture not switched past halfway")
	}
	c.Update(b, 1)
	if b.Angle() != 0 || b.Texture() != core.Texture(second) {
		t.Fatalf("after spin: angle %v", b.Angle())
	}
}
