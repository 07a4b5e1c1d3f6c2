package engine

import (
	"github.com/rotorsim/rotorsim/core/rotor"
	"github.com/rotorsim/rotorsim/pkg/logging"
)

// TraceFunc receives the signal path of every encoded letter, formatted as
// the letters it passed through joined by "->". It is called synchronously
// and must not call back into the engine.
type TraceFunc func(path string)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithTrace attaches a trace observer.
func WithTrace(fn TraceFunc) Option {
	return func(e *Engine) {
		e.trace = fn
	}
}

// WithLogger sets the logger used for configuration events.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCatalog resolves rotor names against cat instead of the default
// Enigma I catalog.
func WithCatalog(cat *rotor.Catalog) Option {
	return func(e *Engine) {
		if cat != nil {
			e.catalog = cat
		}
	}
}
