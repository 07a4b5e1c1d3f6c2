package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSettings    = errors.New("invalid settings")
	ErrUnknownRotor       = errors.New("unknown rotor")
	ErrUnknownReflector   = errors.New("unknown reflector")
	ErrOddPlugboardLength = errors.New("plugboard settings must have an even number of letters")
	ErrDuplicatePlug      = errors.New("letter is already plugged")
	ErrInvalidLetter      = errors.New("setting must be a letter A-Z")
)

// Error describes a rejected configuration. Err is one of the sentinel errors
// above so callers can match with errors.Is.
type Error struct {
	Err    error
	Field  string
	Slot   int
	Value  string
	Letter rune
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrUnknownRotor:
		return fmt.Sprintf("invalid rotor name %q in slot %d", e.Value, e.Slot)
	case ErrUnknownReflector:
		return fmt.Sprintf("invalid reflector name %q", e.Value)
	case ErrOddPlugboardLength:
		return fmt.Sprintf("%s: %q", e.Err, e.Value)
	case ErrDuplicatePlug:
		return fmt.Sprintf("redefinition of plug setting for %c", e.Letter)
	case ErrInvalidLetter:
		return fmt.Sprintf("%s %d: %q is not a letter A-Z", e.Field, e.Slot, e.Value)
	default:
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
