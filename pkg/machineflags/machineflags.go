// Package machineflags registers the machine settings flags shared by the
// command line tools.
package machineflags

import (
	"flag"
	"strings"

	"github.com/rotorsim/rotorsim/core/config"
)

// Values holds the parsed flag values.
type Values struct {
	Config    string
	Rotors    string
	Reflector string
	Rings     string
	Position  string
	Plugs     string

	set map[string]bool
}

// Register adds the machine flags to fs, with defaults taken from
// config.DefaultSettings.
func Register(fs *flag.FlagSet) *Values {
	d := config.DefaultSettings()
	v := &Values{}
	fs.StringVar(&v.Config, "config", "", "Path to a YAML machine settings file. Flags given explicitly override it.")
	fs.StringVar(&v.Rotors, "rotors", strings.Join(d.Rotors, ","), "Rotor order, left to right (from I, II, III, IV, V).")
	fs.StringVar(&v.Reflector, "reflector", d.Reflector, "Reflector (B or C).")
	fs.StringVar(&v.Rings, "rings", d.Rings, "Ring settings, three letters.")
	fs.StringVar(&v.Position, "position", d.Position, "Start position, three letters.")
	fs.StringVar(&v.Plugs, "plugs", d.Plugs, `Plugboard pairs, e.g. "AB CD EF".`)
	return v
}

// Settings builds machine settings from the settings file, if any, and the
// flags that were set on fs. Call it after fs.Parse.
func (v *Values) Settings(fs *flag.FlagSet) (config.Settings, error) {
	v.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { v.set[f.Name] = true })

	s := config.DefaultSettings()
	if v.Config != "" {
		loaded, err := config.LoadSettings(v.Config)
		if err != nil {
			return config.Settings{}, err
		}
		s = *loaded
	}

	if v.useFlag("rotors") {
		s.Rotors = strings.FieldsFunc(v.Rotors, func(r rune) bool {
			return r == ',' || r == ' ' || r == '-'
		})
	}
	if v.useFlag("reflector") {
		s.Reflector = v.Reflector
	}
	if v.useFlag("rings") {
		s.Rings = v.Rings
	}
	if v.useFlag("position") {
		s.Position = v.Position
	}
	if v.useFlag("plugs") {
		s.Plugs = v.Plugs
	}
	return s, nil
}

// useFlag reports whether the flag value should replace the base settings:
// always without a settings file, otherwise only when given explicitly.
func (v *Values) useFlag(name string) bool {
	return v.Config == "" || v.set[name]
}
