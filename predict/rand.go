package predict

import "math/rand"

// RandSource supplies the randomness used for subcategory and tag selection
// and for food confidence draws.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand draws from math/rand's top-level source, which is safe for
// concurrent use.
var DefaultRand RandSource = globalRand{}

func choice(r RandSource, items []string) string {
	return items[r.Intn(len(items))]
}

// sample picks up to k distinct elements of items without replacement.
func sample(r RandSource, items []string, k int) []string {
	pool := append([]string(nil), items...)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// uniform draws from [lo, hi).
func uniform(r RandSource, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
