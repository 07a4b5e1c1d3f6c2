// Package rotorsim simulates the Enigma I rotor cipher machine.
package rotorsim

import (
	"github.com/rotorsim/rotorsim/core/config"
	"github.com/rotorsim/rotorsim/core/engine"
	"github.com/rotorsim/rotorsim/core/format"
	"github.com/rotorsim/rotorsim/interfaces"
)

// Settings is the machine configuration.
type Settings = config.Settings

// TraceFunc receives the signal path of every encoded letter.
type TraceFunc = engine.TraceFunc

// DefaultSettings returns rotors I-II-III, reflector B, rings AAA, start MCK.
func DefaultSettings() Settings {
	return config.DefaultSettings()
}

// NewMachine creates a machine from settings. trace may be nil.
func NewMachine(settings Settings, trace TraceFunc) (interfaces.Machine, error) {
	e, err := engine.New(settings, engine.WithTrace(trace))
	if err != nil {
		return nil, err
	}
	return e, nil
}

// EncodeMessage encodes text on a fresh machine. With group set, the result
// is reduced to letters in groups of five.
func EncodeMessage(settings Settings, text string, group bool) (string, error) {
	e, err := engine.New(settings)
	if err != nil {
		return "", err
	}
	out := e.Encode(text)
	if group {
		out = format.GroupLetters(out)
	}
	return out, nil
}
