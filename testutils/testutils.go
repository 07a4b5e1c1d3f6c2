package testutils

import (
	"strings"
	"sync"

	"github.com/rotorsim/rotorsim/core/config"
)

// Settings builds a configuration from compact strings, e.g.
// Settings("I II III", "B", "AAA", "MCK", "").
func Settings(rotors, reflector, rings, position, plugs string) config.Settings {
	return config.Settings{
		Rotors:    splitFields(rotors),
		Reflector: reflector,
		Rings:     rings,
		Position:  position,
		Plugs:     plugs,
	}
}

// TraceRecorder collects trace paths. It is safe for concurrent use.
type TraceRecorder struct {
	mu    sync.Mutex
	paths []string
}

// Record appends path. Its signature matches engine.TraceFunc.
func (r *TraceRecorder) Record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// Paths returns a copy of everything recorded so far.
func (r *TraceRecorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
}
