package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotorsim/rotorsim/core/rotor"
)

var validate = validator.New()

// Resolved is a validated configuration with every name bound to catalog
// hardware and every letter converted to an index.
type Resolved struct {
	Settings  Settings
	Rotors    [Slots]*rotor.Spec
	Reflector *rotor.Spec
	Rings     [Slots]int
	Position  [Slots]int
	Plugboard Plugboard
}

// Validate checks the shape of the settings: three rotors, a reflector and
// three letters each for rings and position.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must have exactly %s entries", strings.ToLower(fe.Field()), fe.Param()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(msgs, "; "))
}

// Resolve validates s against the default catalog.
func Resolve(s Settings) (*Resolved, error) {
	return ResolveWith(rotor.Default(), s)
}

// ResolveWith validates s and binds it to specs from cat. Nothing is
// returned unless the whole configuration is valid.
func ResolveWith(cat *rotor.Catalog, s Settings) (*Resolved, error) {
	s = s.Clone()
	for i := range s.Rotors {
		s.Rotors[i] = strings.TrimSpace(s.Rotors[i])
	}
	s.Reflector = strings.TrimSpace(s.Reflector)
	s.Rings = strings.ToUpper(s.Rings)
	s.Position = strings.ToUpper(s.Position)
	s.Plugs = normalizePlugs(s.Plugs)

	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := &Resolved{Settings: s}
	for i, name := range s.Rotors {
		spec, ok := cat.Rotor(name)
		if !ok {
			return nil, &Error{Err: ErrUnknownRotor, Field: "rotors", Slot: i, Value: name}
		}
		r.Rotors[i] = spec
	}

	refl, ok := cat.Reflector(s.Reflector)
	if !ok {
		return nil, &Error{Err: ErrUnknownReflector, Field: "reflector", Value: s.Reflector}
	}
	r.Reflector = refl

	var err error
	if r.Rings, err = parseLetters("rings", s.Rings); err != nil {
		return nil, err
	}
	if r.Position, err = parseLetters("position", s.Position); err != nil {
		return nil, err
	}
	if r.Plugboard, err = ParsePlugboard(s.Plugs); err != nil {
		return nil, err
	}
	return r, nil
}

// ParsePositions converts three window letters, case-insensitive, to indices.
func ParsePositions(letters string) ([Slots]int, error) {
	return parseLetters("position", strings.ToUpper(letters))
}

func parseLetters(field, letters string) ([Slots]int, error) {
	var out [Slots]int
	if len(letters) != Slots {
		return out, fmt.Errorf("%w: %s must have exactly %d letters, got %q", ErrInvalidSettings, field, Slots, letters)
	}
	for i := 0; i < Slots; i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return out, &Error{Err: ErrInvalidLetter, Field: field, Slot: i, Value: string(c)}
		}
		out[i] = int(c - 'A')
	}
	return out, nil
}
