package config

// Plugboard is a self-inverse letter swap. Unplugged letters map to themselves.
type Plugboard [26]int

// IdentityPlugboard returns a plugboard with no cables.
func IdentityPlugboard() Plugboard {
	var p Plugboard
	for i := range p {
		p[i] = i
	}
	return p
}

// ParsePlugboard builds a plugboard from a string of letter pairs such as
// "AB CD EF". Case and non-letters are ignored.
func ParsePlugboard(plugs string) (Plugboard, error) {
	p := IdentityPlugboard()
	letters := normalizePlugs(plugs)
	if len(letters)%2 == 1 {
		return p, &Error{Err: ErrOddPlugboardLength, Field: "plugs", Value: letters}
	}

	for i := 0; i < len(letters); i += 2 {
		from := int(letters[i] - 'A')
		to := int(letters[i+1] - 'A')

		if p[from] != from {
			return IdentityPlugboard(), &Error{Err: ErrDuplicatePlug, Field: "plugs", Letter: rune(letters[i])}
		}
		if p[to] != to {
			return IdentityPlugboard(), &Error{Err: ErrDuplicatePlug, Field: "plugs", Letter: rune(letters[i+1])}
		}

		p[from] = to
		p[to] = from
	}
	return p, nil
}

// Swap returns the letter index wired to i.
func (p *Plugboard) Swap(i int) int {
	return p[i]
}

// Cables returns the number of plugged pairs.
func (p *Plugboard) Cables() int {
	n := 0
	for i, j := range p {
		if j > i {
			n++
		}
	}
	return n
}
