package hashkv

import "go.uber.org/zap"

type entry[V any] struct {
	key   string
	value V
}

// Chaining is a hash table that resolves collisions by keeping every key
// that hashes to a bucket in that bucket's slice.
type Chaining[V any] struct {
	buckets   [][]entry[V]
	count     int
	threshold float64
	hashKind  HashKind
	hash      HashFunc
	logger    *zap.Logger
}

// ChainingStats describes how keys are spread over buckets.
type ChainingStats struct {
	// sum over buckets of len(bucket)-1 for non-empty buckets
	Collisions int
	// entries per bucket
	AvgChainLength float64
}

// NewChaining creates an empty chaining table. cfg.Probing is ignored.
func NewChaining[V any](cfg Config, opts ...Option) (*Chaining[V], error) {
	cfg.Probing = ""
	r, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	return &Chaining[V]{
		buckets:   make([][]entry[V], r.capacity),
		threshold: r.threshold,
		hashKind:  r.hashKind,
		hash:      r.hash,
		logger:    o.logger.With(zap.String("table", "chaining"), zap.Stringer("hash", r.hashKind)),
	}, nil
}

// Insert adds or updates a key-value pair.
func (c *Chaining[V]) Insert(key string, value V) {
	if exceeds(c.count, len(c.buckets), c.threshold) {
		c.Resize(grownCapacity(c.count, len(c.buckets), c.threshold))
	}

	if c.put(key, value) && exceeds(c.count, len(c.buckets), c.threshold) {
		c.Resize(grownCapacity(c.count, len(c.buckets), c.threshold))
	}
}

// put places the pair without consulting the load factor and reports
// whether a new entry was added.
func (c *Chaining[V]) put(key string, value V) bool {
	idx := c.hash(key, len(c.buckets))
	bucket := c.buckets[idx]

	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return false
		}
	}

	c.buckets[idx] = append(bucket, entry[V]{key: key, value: value})
	c.count++
	return true
}

// Search retrieves the value stored under key.
func (c *Chaining[V]) Search(key string) (V, bool) {
	for _, e := range c.buckets[c.hash(key, len(c.buckets))] {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (c *Chaining[V]) Delete(key string) bool {
	idx := c.hash(key, len(c.buckets))
	bucket := c.buckets[idx]

	for i := range bucket {
		if bucket[i].key != key {
			continue
		}
		last := len(bucket) - 1
		copy(bucket[i:], bucket[i+1:])
		bucket[last] = entry[V]{}
		c.buckets[idx] = bucket[:last]
		c.count--
		return true
	}
	return false
}

// Resize rebuilds the table with newCapacity buckets, rehashing every entry.
// Non-positive capacities are ignored.
func (c *Chaining[V]) Resize(newCapacity int) {
	if newCapacity <= 0 {
		return
	}

	c.logger.Debug("resize",
		zap.Int("from", len(c.buckets)),
		zap.Int("to", newCapacity),
		zap.Int("count", c.count))

	old := c.buckets
	c.buckets = make([][]entry[V], newCapacity)
	c.count = 0

	for _, bucket := range old {
		for _, e := range bucket {
			c.put(e.key, e.value)
		}
	}
}

// Len returns the number of stored entries.
func (c *Chaining[V]) Len() int { return c.count }

// Capacity returns the number of buckets.
func (c *Chaining[V]) Capacity() int { return len(c.buckets) }

// LoadFactor returns count/capacity.
func (c *Chaining[V]) LoadFactor() float64 {
	return float64(c.count) / float64(len(c.buckets))
}

// HashKind returns the hash function the table was built with.
func (c *Chaining[V]) HashKind() HashKind { return c.hashKind }

// CollisionStats reports collisions and the average chain length.
func (c *Chaining[V]) CollisionStats() ChainingStats {
	var stats ChainingStats
	total := 0
	for _, bucket := range c.buckets {
		if len(bucket) > 1 {
			stats.Collisions += len(bucket) - 1
		}
		total += len(bucket)
	}
	stats.AvgChainLength = float64(total) / float64(len(c.buckets))
	return stats
}
