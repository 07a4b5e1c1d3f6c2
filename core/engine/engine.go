// Package engine implements the rotor machine itself: stepping, the signal
// path through plugboard, rotors and reflector, and manual rotor adjustment.
//
// An Engine is not safe for concurrent use. Callers that share one between
// goroutines must serialize access.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rotorsim/rotorsim/core/config"
	"github.com/rotorsim/rotorsim/core/rotor"
	"github.com/rotorsim/rotorsim/pkg/logging"
)

const (
	left   = 0
	middle = 1
	right  = 2
)

// ErrInvalidSlot is returned for a rotor slot outside 0..2.
var ErrInvalidSlot = errors.New("rotor slot must be 0, 1 or 2")

// Engine is one live machine. Positions change on every encoded letter; the
// rest of the state changes only through Reconfigure.
type Engine struct {
	catalog *rotor.Catalog
	logger  logging.Logger
	trace   TraceFunc

	settings  config.Settings
	rotors    [config.Slots]*rotor.Spec
	reflector *rotor.Spec
	rings     [config.Slots]int
	start     [config.Slots]int
	plugs     config.Plugboard

	position [config.Slots]int
	lamp     int
}

// New builds an engine from settings. It fails with a *config.Error when the
// settings do not resolve.
func New(settings config.Settings, opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog: rotor.Default(),
		logger:  logging.GetLogger(),
		lamp:    -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "engine")

	if err := e.Reconfigure(settings); err != nil {
		return nil, err
	}
	return e, nil
}

// Reconfigure validates settings and, only if they are valid, replaces the
// machine configuration and resets the rotors to the new start position.
// On error the engine keeps its previous configuration and positions.
func (e *Engine) Reconfigure(settings config.Settings) error {
	r, err := config.ResolveWith(e.catalog, settings)
	if err != nil {
		e.logger.Warn("rejected machine settings", "error", err)
		return err
	}

	e.settings = r.Settings
	e.rotors = r.Rotors
	e.reflector = r.Reflector
	e.rings = r.Rings
	e.start = r.Position
	e.plugs = r.Plugboard
	e.position = r.Position
	e.lamp = -1

	e.logger.Info("machine configured", "machine", e.String())
	return nil
}

// SetTrace replaces the trace observer. A nil fn disables tracing.
func (e *Engine) SetTrace(fn TraceFunc) {
	e.trace = fn
}

// Step advances the rotors as one key press does. The middle rotor sitting on
// its own notch moves together with the left rotor, which is what makes it
// step twice in a row (the double step). Otherwise the right rotor on its
// notch carries the middle rotor. The right rotor always moves.
func (e *Engine) Step() {
	if e.position[middle] == e.rotors[middle].Notch {
		e.position[left]++
		e.position[middle]++
	} else if e.position[right] == e.rotors[right].Notch {
		e.position[middle]++
	}
	e.position[right]++

	for i := range e.position {
		e.position[i] %= rotor.Size
	}
}

// EncodeChar presses one key. Letters are case-folded, step the rotors and
// come back as the uppercase lamp letter. Anything else is returned as is and
// leaves the machine untouched.
func (e *Engine) EncodeChar(ch rune) rune {
	up := unicode.ToUpper(ch)
	if up < 'A' || up > 'Z' {
		return ch
	}

	e.Step()

	path := make([]int, 0, 10)
	i := int(up - 'A')
	path = append(path, i)

	i = e.plugs.Swap(i)
	path = append(path, i)

	for r := right; r >= left; r-- {
		d := e.rotors[r].Wiring().Forward[e.contact(r, i)]
		i = (i + d) % rotor.Size
		path = append(path, i)
	}

	i = (i + e.reflector.Wiring().Forward[i]) % rotor.Size
	path = append(path, i)

	for r := left; r <= right; r++ {
		d := e.rotors[r].Wiring().Backward[e.contact(r, i)]
		i = (i + d) % rotor.Size
		path = append(path, i)
	}

	i = e.plugs.Swap(i)
	path = append(path, i)

	e.lamp = i
	if e.trace != nil {
		e.trace(formatPath(path))
	}
	return rune('A' + i)
}

// contact is the wiring contact that signal i enters on rotor r, corrected
// for the rotor's rotation and its ring setting.
func (e *Engine) contact(r, i int) int {
	return (i + e.position[r] - e.rings[r] + rotor.Size) % rotor.Size
}

// Encode presses a key for every rune of s in order. The result has the
// same byte length as s.
func (e *Engine) Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		ch, size := utf8.DecodeRuneInString(s)
		if ch == utf8.RuneError && size == 1 {
			// Invalid UTF-8 is copied through byte for byte.
			b.WriteByte(s[0])
		} else {
			b.WriteRune(e.EncodeChar(ch))
		}
		s = s[size:]
	}
	return b.String()
}

// SpinRotor turns the rotor in slot by delta clicks, in either direction,
// without any stepping side effects, and returns its new window letter.
func (e *Engine) SpinRotor(slot, delta int) (rune, error) {
	if slot < left || slot > right {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSlot, slot)
	}
	p := (e.position[slot] + delta) % rotor.Size
	if p < 0 {
		p += rotor.Size
	}
	e.position[slot] = p
	e.logger.Debug("rotor spun", "slot", slot, "delta", delta, "position", e.PositionString())
	return rune('A' + p), nil
}

// Positions returns the current window letters as indices 0..25.
func (e *Engine) Positions() [config.Slots]int {
	return e.position
}

// PositionString returns the current window letters, e.g. "MCK".
func (e *Engine) PositionString() string {
	return lettersOf(e.position[:])
}

// SetPositions turns all three rotors to the given window letters.
func (e *Engine) SetPositions(letters string) error {
	p, err := config.ParsePositions(letters)
	if err != nil {
		return err
	}
	e.position = p
	return nil
}

// Reset returns the rotors to the configured start position.
func (e *Engine) Reset() {
	e.position = e.start
	e.lamp = -1
}

// Settings returns a copy of the active, normalized configuration.
func (e *Engine) Settings() config.Settings {
	return e.settings.Clone()
}

// Lamp returns the letter lit by the last key press, if any.
func (e *Engine) Lamp() (rune, bool) {
	if e.lamp < 0 {
		return 0, false
	}
	return rune('A' + e.lamp), true
}

// String summarizes the machine, e.g.
// "Rotors: B-I-II-III Position: MCK Rings: AAA Plugs: AB CD".
func (e *Engine) String() string {
	var b strings.Builder
	b.WriteString("Rotors: ")
	b.WriteString(e.reflector.Name)
	for _, r := range e.rotors {
		b.WriteByte('-')
		b.WriteString(r.Name)
	}
	b.WriteString(" Position: ")
	b.WriteString(e.PositionString())
	b.WriteString(" Rings: ")
	b.WriteString(lettersOf(e.rings[:]))
	b.WriteString(" Plugs: ")
	b.WriteString(strings.Join(e.settings.PlugPairs(), " "))
	return b.String()
}

func formatPath(path []int) string {
	var b strings.Builder
	b.Grow(len(path) * 3)
	for n, i := range path {
		if n > 0 {
			b.WriteString("->")
		}
		b.WriteByte(byte('A' + i))
	}
	return b.String()
}

func lettersOf(idx []int) string {
	b := make([]byte, len(idx))
	for n, i := range idx {
		b[n] = byte('A' + i)
	}
	return string(b)
}
