package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadOptionalMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.UI.Theme != "dark" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadOptionalMergesFile(t *testing.T) {
	dir := t.TempDir()
	data := `
window:
  title: demo
  width: 640
  vsync: false
  clear_color: [0.1, 0.2, 0.3, 1]
ui:
  theme: light
  target_width: 320
  target_height: 240
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	cc := cfg.ToCore()
	if cc.Title != "demo" || cc.Width != 640 || cc.Height != 720 || cc.VSync {
		t.Fatalf("core config = %+v", cc)
	}
	if cc.ClearColor != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Fatalf("clear color = %v", cc.ClearColor)
	}
	if cfg.UI.Theme != "light" || cfg.UI.TargetWidth != 320 || cfg.UI.TextSize != 32 {
		t.Fatalf("ui = %+v", cfg.UI)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "window: [", "failed to parse"},
		{"zero width", "window: {width: 0}", "window size"},
		{"half target", "ui: {target_width: 100, target_height: 0}", "both width and height"},
		{"theme", "ui: {theme: neon}", "unknown ui theme"},
		{"log level", "log_level: loud", "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestLoadOptionalUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, FileName), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptional(dir); err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Fatalf("err = %v", err)
	}
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg := Default()
		cfg.LogLevel = in
		if got := cfg.Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", in, got, want)
		}
	}
}
