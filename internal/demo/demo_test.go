package demo

import (
	"math"
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/ui"
)

func click(c *ui.Controller, root ui.Widget, at geom.Vec2) {
	c.HandleEvent(root, core.EventMouseDown{Button: core.MouseButtonLeft, X: at.X, Y: at.Y})
	c.HandleEvent(root, core.EventMouseUp{Button: core.MouseButtonLeft, X: at.X, Y: at.Y})
}

func center(r geom.Rect) geom.Vec2 {
	return geom.V((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestCounterUpdatesLabel(t *testing.T) {
	d := New(Theme("dark", nil, 16), nil)
	c := ui.NewController(Theme("dark", nil, 16))
	c.Resize(1280, 720)
	c.Layout(d.Root)

	at := center(c.Position(d.Counter))
	click(c, d.Root, at)
	click(c, d.Root, at)

	if d.ClickCount() != 2 {
		t.Fatalf("clicks = %d, want 2", d.ClickCount())
	}
	if got := d.Clicks.String(); got != "2 clicks" {
		t.Fatalf("label = %q", got)
	}
}

func TestVolumeDragUpdatesLabelAndSwatch(t *testing.T) {
	d := New(Theme("dark", nil, 16), nil)
	c := ui.NewController(Theme("dark", nil, 16))
	c.Resize(1280, 720)
	c.Layout(d.Root)

	r := c.Position(d.Volume)
	h := r.Max.Y - r.Min.Y
	y := (r.Min.Y + r.Max.Y) / 2
	c.HandleEvent(d.Root, core.EventMouseDown{Button: core.MouseButtonLeft, X: r.Max.X - h/2, Y: y})
	c.HandleEvent(d.Root, core.EventMouseUp{Button: core.MouseButtonLeft, X: r.Max.X - h/2, Y: y})

	if v := d.Volume.Value(); math.Abs(v-1) > 1e-9 {
		t.Fatalf("volume = %v, want 1", v)
	}
	if got := d.VolumeLabel.String(); got != "Volume 100%" {
		t.Fatalf("label = %q", got)
	}
	if a := d.Swatch.Color[3]; a != 1 {
		t.Fatalf("swatch alpha = %v", a)
	}
}

func TestQuitCallback(t *testing.T) {
	quit := false
	d := New(Theme("light", nil, 0), func() { quit = true })
	c := ui.NewController(Theme("light", nil, 0))
	c.Resize(1280, 720)
	c.Layout(d.Root)

	click(c, d.Root, center(c.Position(d.Quit)))
	if !quit {
		t.Fatal("quit not called")
	}
}

func TestThemeByName(t *testing.T) {
	if th := Theme("light", nil, 0); th.BackgroundColor != ui.Light(nil).BackgroundColor {
		t.Fatal("light theme not selected")
	}
	if th := Theme("bogus", nil, 20); th.BackgroundColor != ui.Dark(nil).BackgroundColor || th.TextSize != 20 {
		t.Fatalf("fallback theme = %+v", th)
	}
}
