// Package rotor holds the fixed hardware catalog of the machine: rotor and
// reflector wirings together with their turnover notches.
package rotor

import (
	"errors"
	"fmt"
)

// Size is the number of contacts on every rotor.
const Size = 26

// NoNotch marks specs that never drive a neighbour, such as reflectors.
const NoNotch = -1

// ErrInvalidWiring is returned when a wiring string is not a permutation of A-Z.
var ErrInvalidWiring = errors.New("wiring must be a permutation of the 26 letters A-Z")

// Kind distinguishes stepping rotors from fixed reflectors.
type Kind int

const (
	KindRotor Kind = iota
	KindReflector
)

func (k Kind) String() string {
	switch k {
	case KindRotor:
		return "rotor"
	case KindReflector:
		return "reflector"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Wiring is the offset form of a permutation. Forward[i] is the distance from
// input contact i to its output contact, Backward is the same for the inverse
// permutation. Offsets let the engine add a rotor's rotation without
// recomputing the permutation.
type Wiring struct {
	Forward  [Size]int
	Backward [Size]int
}

// NewWiring builds the offset tables from a 26-letter permutation string.
func NewWiring(wires string) (Wiring, error) {
	var w Wiring
	if len(wires) != Size {
		return w, fmt.Errorf("%w: got %d letters", ErrInvalidWiring, len(wires))
	}

	var seen [Size]bool
	for from := 0; from < Size; from++ {
		c := wires[from]
		if c < 'A' || c > 'Z' {
			return w, fmt.Errorf("%w: %q at position %d", ErrInvalidWiring, c, from)
		}
		to := int(c - 'A')
		if seen[to] {
			return w, fmt.Errorf("%w: %q appears twice", ErrInvalidWiring, c)
		}
		seen[to] = true

		w.Forward[from] = (Size + to - from) % Size
		w.Backward[to] = (Size + from - to) % Size
	}
	return w, nil
}

// selfInverse reports whether the permutation is an involution with no fixed
// points, which is what a reflector must be.
func (w *Wiring) selfInverse() bool {
	for i := 0; i < Size; i++ {
		if w.Forward[i] == 0 || w.Forward[i] != w.Backward[i] {
			return false
		}
	}
	return true
}

// Spec is one piece of cataloged hardware. Specs are shared by pointer and
// must not be modified after construction.
type Spec struct {
	Name   string
	Wires  string
	Notch  int
	Kind   Kind
	wiring Wiring
}

// NewSpec validates wires and returns a spec. notch is a letter A-Z for
// rotors, or 0 for a spec without a notch.
func NewSpec(name, wires string, notch byte, kind Kind) (*Spec, error) {
	if name == "" {
		return nil, errors.New("spec name must not be empty")
	}
	w, err := NewWiring(wires)
	if err != nil {
		return nil, fmt.Errorf("spec %s: %w", name, err)
	}

	n := NoNotch
	switch {
	case notch == 0 || notch == ' ':
	case notch >= 'A' && notch <= 'Z':
		n = int(notch - 'A')
	default:
		return nil, fmt.Errorf("spec %s: notch %q is not a letter", name, notch)
	}
	if kind == KindReflector {
		if n != NoNotch {
			return nil, fmt.Errorf("spec %s: reflectors have no notch", name)
		}
		if !w.selfInverse() {
			return nil, fmt.Errorf("spec %s: reflector wiring must pair letters without fixed points", name)
		}
	}

	return &Spec{Name: name, Wires: wires, Notch: n, Kind: kind, wiring: w}, nil
}

// Wiring returns the offset tables for the spec.
func (s *Spec) Wiring() *Wiring {
	return &s.wiring
}

// NotchLetter returns the notch as a letter, or ' ' when the spec has none.
func (s *Spec) NotchLetter() rune {
	if s.Notch == NoNotch {
		return ' '
	}
	return rune('A' + s.Notch)
}

func (s *Spec) String() string {
	return s.Name
}

func mustSpec(name, wires string, notch byte, kind Kind) *Spec {
	s, err := NewSpec(name, wires, notch, kind)
	if err != nil {
		panic(err)
	}
	return s
}
