// Package workload generates key/value pairs for exercising hash tables.
package workload

import (
	"math/rand"

	"github.com/google/uuid"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Pair is one generated key/value pair.
type Pair struct {
	Key   string
	Value string
}

// Generator produces reproducible workloads from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Alphanumeric returns a random string of length n over [a-zA-Z0-9].
func (g *Generator) Alphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[g.rng.Intn(len(charset))]
	}
	return string(b)
}

// UUID returns a version 4 UUID string drawn from the generator's stream.
func (g *Generator) UUID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand.Rand.Read never fails
		panic(err)
	}
	return id.String()
}

// Pairs returns n pairs of alphanumeric keys and values of length keyLen.
func (g *Generator) Pairs(n, keyLen int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{Key: g.Alphanumeric(keyLen), Value: g.Alphanumeric(keyLen)}
	}
	return pairs
}

// UUIDPairs returns n pairs keyed by UUIDs with alphanumeric values of
// length valueLen.
func (g *Generator) UUIDPairs(n, valueLen int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{Key: g.UUID(), Value: g.Alphanumeric(valueLen)}
	}
	return pairs
}
