// Package demo builds the widget tree shared by the sandbox programs.
package demo

import (
	"fmt"

	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/ui"
)

// Demo is a small settings panel: a click counter, a volume slider with a
// live swatch, and a quit button.
type Demo struct {
	Root ui.Widget

	Title       *ui.Text
	Counter     *ui.Button
	Clicks      *ui.Text
	Volume      *ui.Slider
	VolumeLabel *ui.Text
	Swatch      *ui.ColorBox
	Quit        *ui.Button

	clicks int
}

// New builds the panel. onQuit runs when the quit button is clicked.
func New(theme *ui.Theme, onQuit func()) *Demo {
	d := &Demo{
		Title:       ui.NewText("canopy").FontSize(theme.TextSize * 1.5),
		Counter:     ui.NewButton("Click me"),
		Clicks:      ui.NewText(""),
		Volume:      ui.NewSlider(0.5, 0, 1),
		VolumeLabel: ui.NewText(""),
		Swatch:      ui.NewColorBox(theme.HoverColor),
		Quit:        ui.NewButton("Quit"),
	}
	d.Counter.OnClick(func() { d.setClicks(d.clicks + 1) })
	d.Volume.OnChange(d.setVolume)
	if onQuit != nil {
		d.Quit.OnClick(onQuit)
	}
	d.setClicks(0)
	d.setVolume(d.Volume.Value())

	gap := theme.TextSize / 2
	panel := ui.Column(
		d.Title,
		ui.Divider(theme.UsableColor, 2),
		ui.Row(ui.FixedSize(d.Counter, theme.TextSize*6, theme.TextSize), d.Clicks).Gap(gap),
		ui.Row(ui.FixedSize(d.VolumeLabel, theme.TextSize*6, theme.TextSize), d.Volume).Gap(gap),
		ui.FixedSize(d.Swatch, theme.TextSize*8, theme.TextSize),
		ui.FixedSize(d.Quit, theme.TextSize*4, theme.TextSize),
	).Gap(gap)

	d.Root = ui.Center(
		ui.FixedSize(
			ui.BackgroundColor(ui.Padding(panel, gap), theme.BackgroundColor.WithAlpha(0.8)),
			theme.TextSize*18, theme.TextSize*10,
		),
	)
	return d
}

func (d *Demo) setClicks(n int) {
	d.clicks = n
	d.Clicks.SetText(fmt.Sprintf("%d clicks", n))
}

func (d *Demo) setVolume(v float64) {
	d.VolumeLabel.SetText(fmt.Sprintf("Volume %.0f%%", v*100))
	d.Swatch.Color = d.Swatch.Color.WithAlpha(float32(v))
}

// ClickCount returns how often the counter button was clicked.
func (d *Demo) ClickCount() int { return d.clicks }

// Theme picks the palette named by a config value; anything but "light" is dark.
func Theme(name string, font *text.Font, size float64) *ui.Theme {
	th := ui.Dark(font)
	if name == "light" {
		th = ui.Light(font)
	}
	if size > 0 {
		th.TextSize = size
	}
	return th
}
