package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]int)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)]++
	}

	a.Equal(5, len(found))
	for n := range found {
		a.True(n >= 0 && n < 5)
	}

	a.Equal(0, c.Intn(1))
	a.PanicsWithValue("invalid argument to Intn", func() { c.Intn(0) })
}

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 100; i++ {
		n := s1.Intn(10)
		a.Equal(n, s2.Intn(10))
		a.True(n >= 0 && n < 10)
	}
}
