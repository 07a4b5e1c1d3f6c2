package config

import (
	"github.com/rotorsim/rotorsim/core/format"
)

// Slots is the number of rotor positions in the machine. Slot 0 is the
// leftmost (slowest) rotor and slot 2 the rightmost (fastest).
const Slots = 3

// Settings is the operator-chosen machine configuration.
type Settings struct {
	Rotors    []string `yaml:"rotors" validate:"len=3,dive,required"`
	Reflector string   `yaml:"reflector" validate:"required"`
	Rings     string   `yaml:"rings" validate:"len=3"`
	Position  string   `yaml:"position" validate:"len=3"`
	Plugs     string   `yaml:"plugs"`
}

// DefaultSettings returns rotors I-II-III with reflector B, start position MCK,
// rings AAA and an empty plugboard.
func DefaultSettings() Settings {
	return Settings{
		Rotors:    []string{"I", "II", "III"},
		Reflector: "B",
		Rings:     "AAA",
		Position:  "MCK",
	}
}

// Clone returns a copy that shares no slices with s.
func (s Settings) Clone() Settings {
	out := s
	out.Rotors = append([]string(nil), s.Rotors...)
	return out
}

// PlugPairs splits the normalized plugboard string into letter pairs.
func (s Settings) PlugPairs() []string {
	letters := normalizePlugs(s.Plugs)
	pairs := make([]string, 0, len(letters)/2)
	for i := 0; i+1 < len(letters); i += 2 {
		pairs = append(pairs, letters[i:i+2])
	}
	return pairs
}

// normalizePlugs uppercases plugs and drops everything that is not A-Z.
func normalizePlugs(plugs string) string {
	return format.Letters(plugs)
}
