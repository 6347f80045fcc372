package core

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the logger set via SetLogger")
	}
	Logger().Info("engine start", "title", "sandbox")
	if !strings.Contains(buf.String(), "engine start") {
		t.Errorf("log output = %q, want it to contain %q", buf.String(), "engine start")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
