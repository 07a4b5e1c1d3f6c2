// Package securerandom draws key material from crypto/rand. Key sheets must
// never come from math/rand.
package securerandom

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

type cryptoSource struct{}

// Crypto returns the crypto/rand backed source.
func Crypto() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid argument to Intn: %d", n)
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate secure random number: %w", err)
	}
	return int(nBig.Int64()), nil
}

// Shuffle permutes n elements with the Fisher-Yates algorithm, calling swap
// to exchange elements i and j.
func Shuffle(src Source, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}

// Perm returns a random permutation of [0, n).
func Perm(src Source, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid argument to Perm: %d", n)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	if err := Shuffle(src, n, func(i, j int) { p[i], p[j] = p[j], p[i] }); err != nil {
		return nil, err
	}
	return p, nil
}
