// Package profiler records named scopes and exports them for speedscope.
// Without the "profile" build tag every call is a no-op.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const speedscopeSchema = "https://www.speedscope.app/file-format-schema.json"

// event is one scope boundary. at is in unix nanoseconds.
type event struct {
	at    int64
	frame int
	open  bool
}

type speedscopeFile struct {
	Schema             string              `json:"$schema"`
	Shared             speedscopeShared    `json:"shared"`
	Profiles           []speedscopeProfile `json:"profiles"`
	ActiveProfileIndex int                 `json:"activeProfileIndex"`
	Exporter           string              `json:"exporter,omitempty"`
	Name               string              `json:"name,omitempty"`
}

type speedscopeShared struct {
	Frames []speedscopeFrame `json:"frames"`
}

type speedscopeFrame struct {
	Name string `json:"name"`
}

type speedscopeProfile struct {
	Type       string            `json:"type"`
	Name       string            `json:"name"`
	Unit       string            `json:"unit"`
	StartValue int64             `json:"startValue"`
	EndValue   int64             `json:"endValue"`
	Events     []speedscopeEvent `json:"events"`
}

type speedscopeEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

var errNoEvents = errors.New("profiler: no events recorded")

// buildSpeedscope turns events in write order into one evented profile with
// microsecond timestamps relative to the first event. Timestamps never go
// backwards, a close that does not match the innermost open scope is
// dropped, and scopes still open at the end are closed at the last timestamp.
func buildSpeedscope(evs []event, names []string) (*speedscopeFile, error) {
	if len(evs) == 0 {
		return nil, errNoEvents
	}

	base := evs[0].at
	out := make([]speedscopeEvent, 0, len(evs))
	var open []int
	var last int64

	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			open = append(open, e.frame)
		} else {
			if len(open) == 0 || open[len(open)-1] != e.frame {
				continue
			}
			open = open[:len(open)-1]
		}
		kind := "C"
		if e.open {
			kind = "O"
		}
		out = append(out, speedscopeEvent{Type: kind, At: at, Frame: e.frame})
		last = at
	}
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, speedscopeEvent{Type: "C", At: last, Frame: open[i]})
	}
	if len(out) == 0 {
		return nil, errNoEvents
	}

	frames := make([]speedscopeFrame, len(names))
	for i, n := range names {
		frames[i] = speedscopeFrame{Name: n}
	}
	return &speedscopeFile{
		Schema: speedscopeSchema,
		Shared: speedscopeShared{Frames: frames},
		Profiles: []speedscopeProfile{{
			Type:     "evented",
			Name:     "canopy (evented)",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "canopy-profiler",
		Name:     "canopy capture",
	}, nil
}

// writeJSON encodes v to a temporary file next to path and renames it into
// place, so readers never see a partial file.
func writeJSON(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: create %s: %w", tmp, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: close %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
