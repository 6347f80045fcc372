package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/canopy/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeyW, core.KeyW},
		{glfw.KeyP, core.KeyP},
		{glfw.KeyF3, core.KeyF3},
		{glfw.KeyF12, core.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.in); got != tt.want {
			t.Errorf("translateKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTranslateButton(t *testing.T) {
	if b, ok := translateButton(glfw.MouseButtonRight); !ok || b != core.MouseButtonRight {
		t.Fatalf("right = %v, %v", b, ok)
	}
	if _, ok := translateButton(glfw.MouseButton5); ok {
		t.Fatal("extra buttons should be ignored")
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModAlt)
	if got != core.ModShift|core.ModAlt {
		t.Fatalf("mods = %v", got)
	}
}
