package keysheet

import (
	"errors"
	"testing"

	"github.com/rotorsim/rotorsim/core/config"
	"github.com/rotorsim/rotorsim/pkg/securerandom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSource always draws 0, which makes Fisher-Yates rotate the slice left.
type zeroSource struct{ calls int }

func (z *zeroSource) Intn(n int) (int, error) {
	z.calls++
	return 0, nil
}

type failingSource struct{}

func (failingSource) Intn(int) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerateDeterministic(t *testing.T) {
	s, err := Generate(&zeroSource{}, Options{Cables: 2, Reflector: "B"})
	require.NoError(t, err)

	// Perm over [I II III IV V] with all-zero draws yields [1 2 3 4 0].
	assert.Equal(t, []string{"II", "III", "IV"}, s.Rotors)
	assert.Equal(t, "B", s.Reflector)
	assert.Equal(t, "AAA", s.Rings)
	assert.Equal(t, "AAA", s.Position)
	assert.Equal(t, "BC DE", s.Plugs)
}

func TestGenerateCrypto(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, err := Generate(securerandom.Crypto(), Options{Cables: DefaultCables})
		require.NoError(t, err)

		r, err := config.Resolve(s)
		require.NoError(t, err)
		assert.Equal(t, DefaultCables, r.Plugboard.Cables())
		assert.NotEqual(t, s.Rotors[0], s.Rotors[1])
		assert.NotEqual(t, s.Rotors[1], s.Rotors[2])
		assert.NotEqual(t, s.Rotors[0], s.Rotors[2])
		assert.Contains(t, []string{"B", "C"}, s.Reflector)
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(securerandom.Crypto(), Options{Cables: 14})
	assert.Error(t, err)

	_, err = Generate(failingSource{}, Options{Cables: 10})
	assert.EqualError(t, err, "entropy exhausted")
}

func TestGenerateFullBoard(t *testing.T) {
	s, err := Generate(securerandom.Crypto(), Options{Cables: 13})
	require.NoError(t, err)
	assert.Len(t, s.PlugPairs(), 13)
}
