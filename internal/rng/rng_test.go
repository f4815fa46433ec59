package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestShuffle(t *testing.T) {
	a := assert.New(t)

	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(NewSeeded(1), len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}

	a.Equal(10, len(seen))
	a.NotEqual([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values)

	// nothing to swap
	Shuffle(Crypto{}, 1, func(i, j int) {
		t.Error("swap should not be called")
	})
}

func TestSample(t *testing.T) {
	a := assert.New(t)
	gen := NewSeeded(7)

	for k := 0; k <= 5; k++ {
		picked := Sample(gen, 5, k)
		a.Equal(k, len(picked))

		seen := make(map[int]bool)
		for _, idx := range picked {
			a.True(idx >= 0 && idx < 5)
			a.False(seen[idx], "index %d picked twice", idx)
			seen[idx] = true
		}
	}

	a.Equal(3, len(Sample(gen, 3, 10)))
	a.Empty(Sample(gen, 4, 0))
	a.Empty(Sample(gen, 4, -1))
}
