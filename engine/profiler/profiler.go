//go:build profile

package profiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hubastard/canopy/engine/core"
)

// Init starts recording into a ring of capacity events, replacing anything
// recorded before. A non-positive capacity selects 1<<20.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	rec.reset(capacity)
}

// Start opens a scope and returns the func that closes it.
//
//	defer profiler.Start("ui.layout")()
func Start(name string) func() {
	if !rec.ready.Load() {
		return func() {}
	}
	frame := rec.id(name)
	begin := time.Now().UnixNano()
	rec.record(event{at: begin, frame: frame, open: true})
	return func() {
		rec.record(event{at: max(time.Now().UnixNano(), begin), frame: frame})
	}
}

// Enabled reports whether scopes are being recorded.
func Enabled() bool { return rec.ready.Load() }

// Dump writes the recorded scopes to path in speedscope's evented format.
func Dump(path string) error {
	if !rec.ready.Load() {
		return errNoEvents
	}
	doc, err := buildSpeedscope(rec.events(), rec.frameNames())
	if err != nil {
		return err
	}
	return writeJSON(path, doc)
}

// OpenProfilerGraph dumps to a temporary file and opens it with the
// speedscope CLI when installed. The dump path is returned either way.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "canopy.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = hideWindowAttr()
	if err := cmd.Start(); err != nil {
		core.Logger().Warn("profiler: launching speedscope failed", "path", path, "err", err)
	}
	return path, nil
}
