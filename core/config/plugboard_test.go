package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlugboard(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		p, err := ParsePlugboard("")
		require.NoError(t, err)
		assert.Equal(t, IdentityPlugboard(), p)
		assert.Equal(t, 0, p.Cables())
	})

	t.Run("Pairs", func(t *testing.T) {
		p, err := ParsePlugboard("ab Cz")
		require.NoError(t, err)
		assert.Equal(t, 1, p.Swap(0))
		assert.Equal(t, 0, p.Swap(1))
		assert.Equal(t, 25, p.Swap(2))
		assert.Equal(t, 2, p.Swap(25))
		assert.Equal(t, 3, p.Swap(3))
		assert.Equal(t, 2, p.Cables())
	})

	t.Run("SelfPair", func(t *testing.T) {
		// A letter cabled to itself leaves the identity in place.
		p, err := ParsePlugboard("AA")
		require.NoError(t, err)
		assert.Equal(t, IdentityPlugboard(), p)
	})

	t.Run("OddLength", func(t *testing.T) {
		_, err := ParsePlugboard("AB C")
		assert.ErrorIs(t, err, ErrOddPlugboardLength)
	})

	t.Run("Duplicate", func(t *testing.T) {
		p, err := ParsePlugboard("ABAC")
		assert.ErrorIs(t, err, ErrDuplicatePlug)
		assert.Equal(t, IdentityPlugboard(), p)
	})
}

// genPlugboard yields plugboard strings built from a shuffle of the alphabet,
// so every generated string is valid.
func genPlugboard() gopter.Gen {
	return gen.SliceOfN(26, gen.IntRange(0, 1<<20)).Map(func(keys []int) string {
		letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		for i := len(letters) - 1; i > 0; i-- {
			j := keys[i] % (i + 1)
			letters[i], letters[j] = letters[j], letters[i]
		}
		n := (keys[0] % 14) * 2
		return string(letters[:n])
	})
}

func TestPlugboardInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("swap is its own inverse", prop.ForAll(
		func(plugs string) bool {
			p, err := ParsePlugboard(plugs)
			if err != nil {
				return false
			}
			for x := 0; x < 26; x++ {
				if p.Swap(p.Swap(x)) != x {
					return false
				}
			}
			return p.Cables() == len(plugs)/2
		},
		genPlugboard(),
	))

	properties.TestingRun(t)
}
