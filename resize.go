package hashkv

// exceeds reports whether count entries in capacity slots is above threshold.
func exceeds(count, capacity int, threshold float64) bool {
	return float64(count)/float64(capacity) > threshold
}

// grownCapacity doubles capacity until count live entries fit under the
// threshold, so reinsertion during a resize never asks for another one.
func grownCapacity(count, capacity int, threshold float64) int {
	next := capacity * 2
	for exceeds(count, next, threshold) {
		next *= 2
	}
	return next
}
