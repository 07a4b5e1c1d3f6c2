package machineflags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotorsim/rotorsim/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (config.Settings, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	v := Register(fs)
	require.NoError(t, fs.Parse(args))
	return v.Settings(fs)
}

func TestDefaults(t *testing.T) {
	s, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestFlags(t *testing.T) {
	s, err := parse(t, "-rotors", "II-IV-V", "-reflector", "C", "-rings", "bul", "-position", "BLA", "-plugs", "AV BS")
	require.NoError(t, err)
	assert.Equal(t, []string{"II", "IV", "V"}, s.Rotors)
	assert.Equal(t, "C", s.Reflector)
	assert.Equal(t, "bul", s.Rings)
	assert.Equal(t, "BLA", s.Position)
	assert.Equal(t, "AV BS", s.Plugs)
}

func TestConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rotors: [III, II, I]\nreflector: C\nposition: QEV\n"), 0o600))

	s, err := parse(t, "-config", path, "-position", "AAA")
	require.NoError(t, err)
	assert.Equal(t, []string{"III", "II", "I"}, s.Rotors)
	assert.Equal(t, "C", s.Reflector)
	assert.Equal(t, "AAA", s.Position)
	assert.Equal(t, "AAA", s.Rings)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := parse(t, "-config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
