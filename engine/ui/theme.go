package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/text"
)

// Theme is passive style data read by widgets during layout and drawing.
type Theme struct {
	BackgroundColor colors.Color
	WarnColor       colors.Color
	ErrorColor      colors.Color
	SuccessColor    colors.Color
	UsableColor     colors.Color
	HoverColor      colors.Color
	TextColor       colors.Color
	TextSize        float64
	PressRatio      float64
	Font            *text.Font
}

func Dark(font *text.Font) *Theme {
	return &Theme{
		BackgroundColor: colors.Black,
		WarnColor:       colors.Yellow,
		ErrorColor:      colors.Red,
		SuccessColor:    colors.Green,
		UsableColor:     colors.White,
		HoverColor:      colors.Color{0.3, 0.3, 1, 1},
		TextColor:       colors.Gray,
		TextSize:        32,
		PressRatio:      0.25,
		Font:            font,
	}
}

func Light(font *text.Font) *Theme {
	return &Theme{
		BackgroundColor: colors.White,
		WarnColor:       colors.Color{0.5, 0.5, 0, 1},
		ErrorColor:      colors.Red,
		SuccessColor:    colors.Green,
		UsableColor:     colors.Color{0.3, 0.3, 1, 1},
		HoverColor:      colors.Color{0, 0, 0.5, 1},
		TextColor:       colors.Black,
		TextSize:        32,
		PressRatio:      0.25,
		Font:            font,
	}
}
