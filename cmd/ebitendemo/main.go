// Command ebitendemo runs the demo panel on the ebiten host, which adds touch
// input and runs on platforms without desktop GL.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/config"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/platform/ebitenhost"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/ui"
	"github.com/hubastard/canopy/internal/demo"
)

func main() {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		log.Fatal(err)
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	var font *text.Font
	if cfg.UI.Font != "" {
		font, err = text.LoadTTF(ebitenhost.TextureFactory{}, cfg.UI.Font, cfg.UI.FontAtlasPx)
	} else {
		font, err = text.Default(ebitenhost.TextureFactory{}, cfg.UI.FontAtlasPx)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer font.Close()

	theme := demo.Theme(cfg.UI.Theme, font, cfg.UI.TextSize)
	ctrl := ui.NewController(theme).TargetResolution(cfg.UI.TargetWidth, cfg.UI.TargetHeight)

	var game *ebitenhost.Game
	panel := demo.New(theme, func() { game.Close() })
	game = ebitenhost.NewGame(ctrl, panel.Root)
	game.ClearColor = colors.Color(cfg.Window.ClearColor)
	game.OnEvent = func(ev core.Event) error {
		if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
			game.Close()
		}
		return nil
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.Window.VSync == nil || *cfg.Window.VSync)

	core.Logger().Info("ebiten host starting", "title", cfg.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
