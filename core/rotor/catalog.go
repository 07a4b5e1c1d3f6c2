package rotor

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog is a read-only registry of specs keyed by name.
type Catalog struct {
	specs map[string]*Spec
	order []string
}

// NewCatalog builds a catalog from specs. Names must be unique.
func NewCatalog(specs ...*Spec) (*Catalog, error) {
	c := &Catalog{specs: make(map[string]*Spec, len(specs))}
	for _, s := range specs {
		if _, dup := c.specs[s.Name]; dup {
			return nil, fmt.Errorf("duplicate spec name %q", s.Name)
		}
		c.specs[s.Name] = s
		c.order = append(c.order, s.Name)
	}
	return c, nil
}

// Lookup returns the spec with the given name.
func (c *Catalog) Lookup(name string) (*Spec, bool) {
	s, ok := c.specs[name]
	return s, ok
}

// Rotor returns the named spec only if it is a stepping rotor.
func (c *Catalog) Rotor(name string) (*Spec, bool) {
	s, ok := c.specs[name]
	if !ok || s.Kind != KindRotor {
		return nil, false
	}
	return s, true
}

// Reflector returns the named spec only if it is a reflector.
func (c *Catalog) Reflector(name string) (*Spec, bool) {
	s, ok := c.specs[name]
	if !ok || s.Kind != KindReflector {
		return nil, false
	}
	return s, true
}

// Specs returns every spec in registration order.
func (c *Catalog) Specs() []*Spec {
	out := make([]*Spec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.specs[name])
	}
	return out
}

// Names returns the sorted names of all specs of the given kind.
func (c *Catalog) Names(kind Kind) []string {
	var names []string
	for name, s := range c.specs {
		if s.Kind == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the Enigma I catalog: rotors I-V and reflectors B and C.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(
			mustSpec("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q', KindRotor),
			mustSpec("II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E', KindRotor),
			mustSpec("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V', KindRotor),
			mustSpec("IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J', KindRotor),
			mustSpec("V", "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z', KindRotor),
			mustSpec("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT", 0, KindReflector),
			mustSpec("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL", 0, KindReflector),
		)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
