// Package keysheet generates random daily keys: rotor order, ring settings,
// start position and plugboard cabling.
package keysheet

import (
	"fmt"
	"strings"

	"github.com/rotorsim/rotorsim/core/config"
	"github.com/rotorsim/rotorsim/core/rotor"
	"github.com/rotorsim/rotorsim/pkg/securerandom"
)

// DefaultCables is the number of plugboard cables issued with the machine.
const DefaultCables = 10

// Options controls key generation.
type Options struct {
	// Cables is the number of plugboard pairs, 0..13.
	Cables int
	// Reflector fixes the reflector; empty picks one at random.
	Reflector string
	// Catalog supplies rotor and reflector names; nil means rotor.Default().
	Catalog *rotor.Catalog
}

// Generate draws a key from src. Rotors in a generated key are always
// distinct, as on issued key sheets.
func Generate(src securerandom.Source, opts Options) (config.Settings, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = rotor.Default()
	}
	if opts.Cables < 0 || opts.Cables > 13 {
		return config.Settings{}, fmt.Errorf("cables must be between 0 and 13, got %d", opts.Cables)
	}

	rotors := cat.Names(rotor.KindRotor)
	if len(rotors) < config.Slots {
		return config.Settings{}, fmt.Errorf("catalog has %d rotors, need %d", len(rotors), config.Slots)
	}
	order, err := securerandom.Perm(src, len(rotors))
	if err != nil {
		return config.Settings{}, err
	}

	s := config.Settings{Rotors: make([]string, config.Slots)}
	for i := range s.Rotors {
		s.Rotors[i] = rotors[order[i]]
	}

	s.Reflector = opts.Reflector
	if s.Reflector == "" {
		reflectors := cat.Names(rotor.KindReflector)
		if len(reflectors) == 0 {
			return config.Settings{}, fmt.Errorf("catalog has no reflectors")
		}
		n, err := src.Intn(len(reflectors))
		if err != nil {
			return config.Settings{}, err
		}
		s.Reflector = reflectors[n]
	}

	if s.Rings, err = letters(src, config.Slots); err != nil {
		return config.Settings{}, err
	}
	if s.Position, err = letters(src, config.Slots); err != nil {
		return config.Settings{}, err
	}

	alphabet, err := securerandom.Perm(src, rotor.Size)
	if err != nil {
		return config.Settings{}, err
	}
	pairs := make([]string, opts.Cables)
	for i := range pairs {
		pairs[i] = string([]byte{byte('A' + alphabet[2*i]), byte('A' + alphabet[2*i+1])})
	}
	s.Plugs = strings.Join(pairs, " ")

	if _, err := config.ResolveWith(cat, s); err != nil {
		return config.Settings{}, fmt.Errorf("generated key does not resolve: %w", err)
	}
	return s, nil
}

func letters(src securerandom.Source, n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		v, err := src.Intn(rotor.Size)
		if err != nil {
			return "", err
		}
		b[i] = byte('A' + v)
	}
	return string(b), nil
}
