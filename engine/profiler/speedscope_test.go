package profiler

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func types(evs []speedscopeEvent) string {
	var b strings.Builder
	for _, e := range evs {
		b.WriteString(e.Type)
	}
	return b.String()
}

func TestBuildSpeedscope(t *testing.T) {
	const us = 1000
	tests := []struct {
		name     string
		in       []event
		want     string
		wantLast int64
	}{
		{
			name: "nested",
			in: []event{
				{at: 0, frame: 0, open: true},
				{at: 2 * us, frame: 1, open: true},
				{at: 5 * us, frame: 1},
				{at: 9 * us, frame: 0},
			},
			want:     "OOCC",
			wantLast: 9,
		},
		{
			name: "mismatched close dropped",
			in: []event{
				{at: 0, frame: 0, open: true},
				{at: 1 * us, frame: 1},
				{at: 3 * us, frame: 0},
			},
			want:     "OC",
			wantLast: 3,
		},
		{
			name: "open scopes closed at the end",
			in: []event{
				{at: 0, frame: 0, open: true},
				{at: 4 * us, frame: 1, open: true},
			},
			want:     "OOCC",
			wantLast: 4,
		},
		{
			name: "clock going backwards is clamped",
			in: []event{
				{at: 10 * us, frame: 0, open: true},
				{at: 20 * us, frame: 1, open: true},
				{at: 15 * us, frame: 1},
				{at: 30 * us, frame: 0},
			},
			want:     "OOCC",
			wantLast: 20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := buildSpeedscope(tt.in, []string{"a", "b"})
			if err != nil {
				t.Fatalf("buildSpeedscope: %v", err)
			}
			p := doc.Profiles[0]
			if got := types(p.Events); got != tt.want {
				t.Errorf("events = %s, want %s", got, tt.want)
			}
			if p.EndValue != tt.wantLast {
				t.Errorf("end = %d, want %d", p.EndValue, tt.wantLast)
			}
			for i := 1; i < len(p.Events); i++ {
				if p.Events[i].At < p.Events[i-1].At {
					t.Fatalf("timestamps go backwards: %+v", p.Events)
				}
			}
		})
	}
}

func TestBuildSpeedscopeEmpty(t *testing.T) {
	if _, err := buildSpeedscope(nil, nil); !errors.Is(err, errNoEvents) {
		t.Fatalf("err = %v", err)
	}
	only := []event{{at: 0, frame: 0}}
	if _, err := buildSpeedscope(only, []string{"a"}); !errors.Is(err, errNoEvents) {
		t.Fatalf("lone close: err = %v", err)
	}
}

func TestWriteJSON(t *testing.T) {
	doc, err := buildSpeedscope([]event{{at: 0, open: true}, {at: 1000}}, []string{"frame"})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := writeJSON(path, doc); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back speedscopeFile
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Schema != speedscopeSchema || back.Shared.Frames[0].Name != "frame" {
		t.Fatalf("got %+v", back)
	}
}
