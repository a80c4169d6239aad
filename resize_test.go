package hashkv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExceeds(t *testing.T) {
	assert.False(t, exceeds(7, 10, 0.7))
	assert.True(t, exceeds(8, 10, 0.7))
	assert.False(t, exceeds(10, 10, 1.0))
	assert.False(t, exceeds(0, 1, 0.01))
}

func TestGrownCapacity(t *testing.T) {
	assert.Equal(t, 20, grownCapacity(8, 10, 0.7))
	assert.Equal(t, 12, grownCapacity(1, 3, 0.1))
	assert.Equal(t, 2, grownCapacity(1, 1, 1.0))
}

func TestProberSequences(t *testing.T) {
	linear := newProber(LinearProbing, SimpleHash, "a", 10)
	assert.Equal(t, []int{7, 8, 9, 0}, []int{linear.at(0), linear.at(1), linear.at(2), linear.at(3)})

	// h1 = 97 % 11 = 9, h2 = 1 + 97 % 10 = 8
	double := newProber(DoubleHashing, SimpleHash, "a", 11)
	assert.Equal(t, []int{9, 6, 3}, []int{double.at(0), double.at(1), double.at(2)})

	single := newProber(DoubleHashing, SimpleHash, "a", 1)
	assert.Equal(t, 1, single.step)
	assert.Equal(t, 0, single.at(5))
}
