package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/ui"
)

// Game runs a UI tree as an ebiten.Game. Mouse and touch input reach the
// controller first; events it does not consume go to OnEvent.
type Game struct {
	Controller *ui.Controller
	Root       ui.Widget
	ClearColor colors.Color
	// OnEvent, if set, receives events the UI did not consume. Returning an
	// error stops the game.
	OnEvent func(core.Event) error

	fb     *Framebuffer
	input  poller
	closed bool
}

func NewGame(c *ui.Controller, root ui.Widget) *Game {
	return &Game{Controller: c, Root: root, ClearColor: colors.Black, fb: NewFramebuffer()}
}

// Close stops the game at the end of the current tick.
func (g *Game) Close() { g.closed = true }

func (g *Game) Update() error {
	var err error
	g.input.Poll(func(ev core.Event) {
		if err != nil {
			return
		}
		if g.Controller.HandleEvent(g.Root, ev) {
			return
		}
		if g.OnEvent != nil {
			err = g.OnEvent(ev)
		}
	})
	if err != nil {
		return err
	}
	g.Controller.Update(g.Root, 1/float64(ebiten.TPS()))
	if g.closed {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.ClearColor
	screen.Fill(colorRGBA(c))
	g.fb.SetScreen(screen)
	g.Controller.Draw(g.Root, g.fb)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w, h := int(float64(outsideWidth)*s), int(float64(outsideHeight)*s)
	g.Controller.Resize(w, h)
	return w, h
}
