package hashkv

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a bucket or slot index in [0, capacity).
// Capacity must be positive.
type HashFunc func(key string, capacity int) int

// HashKind selects one of the built-in hash functions.
type HashKind int

const (
	HashSimple HashKind = iota
	HashPolynomial
	HashDJB2
	HashXX
)

const (
	polyMultiplier = 31
	djb2Seed       = 5381
	djb2Multiplier = 33
)

// ParseHashKind resolves a hash function name.
func ParseHashKind(name string) (HashKind, error) {
	switch name {
	case "simple":
		return HashSimple, nil
	case "polynomial":
		return HashPolynomial, nil
	case "djb2":
		return HashDJB2, nil
	case "xxhash":
		return HashXX, nil
	}
	return 0, fmt.Errorf("unknown hash function %q: %w", name, ErrInvalidConfiguration)
}

func (k HashKind) String() string {
	switch k {
	case HashSimple:
		return "simple"
	case HashPolynomial:
		return "polynomial"
	case HashDJB2:
		return "djb2"
	case HashXX:
		return "xxhash"
	}
	return fmt.Sprintf("HashKind(%d)", int(k))
}

// Func returns the hash function for k. Unknown kinds get SimpleHash.
func (k HashKind) Func() HashFunc {
	switch k {
	case HashPolynomial:
		return PolynomialHash
	case HashDJB2:
		return DJB2Hash
	case HashXX:
		return XXHash
	}
	return SimpleHash
}

// SimpleHash sums the character codes of key. It collides easily and is
// kept as a baseline for comparison.
func SimpleHash(key string, capacity int) int {
	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}
	return int(sum % uint64(capacity))
}

// PolynomialHash evaluates the character codes as a polynomial in 31 using
// Horner's rule, reducing modulo capacity at every step.
func PolynomialHash(key string, capacity int) int {
	m := uint64(capacity)
	var h uint64
	for _, r := range key {
		h = (h*polyMultiplier + uint64(r)) % m
	}
	return int(h)
}

// DJB2Hash is Bernstein's hash: h = h*33 + c starting from 5381, in 32-bit
// arithmetic.
func DJB2Hash(key string, capacity int) int {
	h := uint32(djb2Seed)
	for _, r := range key {
		h = h*djb2Multiplier + uint32(r)
	}
	return int(uint64(h) % uint64(capacity))
}

// XXHash reduces the 64-bit xxhash digest of key modulo capacity.
func XXHash(key string, capacity int) int {
	return int(xxhash.Sum64String(key) % uint64(capacity))
}
