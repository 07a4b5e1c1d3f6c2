package interfaces

// Machine is what user interfaces need from a rotor machine.
type Machine interface {
	// EncodeChar presses one key and returns the lit lamp. Non-letters are
	// returned unchanged and do not move the rotors.
	EncodeChar(ch rune) rune
	// Encode presses a key for every character of s.
	Encode(s string) string
	// Positions returns the three window letters as indices 0..25, left to right.
	Positions() [3]int
	// PositionString returns the three window letters, e.g. "MCK".
	PositionString() string
	// SpinRotor turns one rotor by hand and returns its new window letter.
	SpinRotor(slot, delta int) (rune, error)
	// Reset turns the rotors back to the configured start position.
	Reset()
	// String summarizes the configuration.
	String() string
}
