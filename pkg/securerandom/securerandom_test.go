package securerandom

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Intn(int) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestCryptoIntnRejectsEmptyRange(t *testing.T) {
	_, err := Crypto().Intn(0)
	assert.Error(t, err)
}

func TestPerm(t *testing.T) {
	p, err := Perm(Crypto(), 26)
	require.NoError(t, err)
	require.Len(t, p, 26)

	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}

	empty, err := Perm(Crypto(), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Perm(Crypto(), -1)
	assert.Error(t, err)
}

func TestShufflePropagatesErrors(t *testing.T) {
	err := Shuffle(failingSource{}, 5, func(i, j int) {})
	assert.EqualError(t, err, "entropy exhausted")

	// Nothing to shuffle means no draws.
	assert.NoError(t, Shuffle(failingSource{}, 1, func(i, j int) {}))
}
