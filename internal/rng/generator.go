package rng

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Crypto draws from crypto/rand
// It is the default for real games.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// It panics if n <= 0, like math/rand.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded is a reproducible Generator
// Two generators with the same seed produce the same games.
type Seeded struct {
	seed int64
	rng  *mathrand.Rand
}

// NewSeeded returns a Generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  mathrand.New(mathrand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
