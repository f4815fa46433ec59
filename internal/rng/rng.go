package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Shuffle performs a Fisher-Yates shuffle of n elements using gen
func Shuffle(gen Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		swap(i, j)
	}
}

// Sample returns k distinct indexes from [0, n) in random order
// If k >= n, every index is returned.
func Sample(gen Generator, n, k int) []int {
	if k > n {
		k = n
	}

	if k <= 0 {
		return []int{}
	}

	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}

	// partial Fisher-Yates, only the first k positions are settled
	for i := 0; i < k; i++ {
		j := i + gen.Intn(n-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}

	return indexes[:k]
}
