package hashkv

import "go.uber.org/zap"

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type slot[V any] struct {
	state slotState
	key   string
	value V
}

// OpenAddressing is a hash table that stores every pair directly in a slot
// array and resolves collisions by probing alternate slots.
type OpenAddressing[V any] struct {
	slots      []slot[V]
	count      int
	tombstones int
	threshold  float64
	hashKind   HashKind
	hash       HashFunc
	probing    Probing
	logger     *zap.Logger
}

// ProbeStats describes how far keys sit from their home slots.
type ProbeStats struct {
	// occupied slots that are not their key's home slot
	Collisions int
	// largest attempt number needed to reach an occupied slot
	MaxProbeLength int
}

// NewOpenAddressing creates an empty open-addressing table.
func NewOpenAddressing[V any](cfg Config, opts ...Option) (*OpenAddressing[V], error) {
	r, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	return &OpenAddressing[V]{
		slots:     make([]slot[V], r.capacity),
		threshold: r.threshold,
		hashKind:  r.hashKind,
		hash:      r.hash,
		probing:   r.probing,
		logger: o.logger.With(
			zap.String("table", "open_addressing"),
			zap.Stringer("hash", r.hashKind),
			zap.Stringer("probing", r.probing)),
	}, nil
}

// Insert adds or updates a key-value pair.
func (t *OpenAddressing[V]) Insert(key string, value V) {
	if exceeds(t.count, len(t.slots), t.threshold) {
		t.Resize(grownCapacity(t.count, len(t.slots), t.threshold))
	}

	if t.putWithRetry(key, value) && exceeds(t.count, len(t.slots), t.threshold) {
		t.Resize(grownCapacity(t.count, len(t.slots), t.threshold))
	}
}

// putWithRetry places the pair, doubling the table whenever the probe
// sequence runs out of candidate slots. It reports whether a new entry was
// added.
func (t *OpenAddressing[V]) putWithRetry(key string, value V) bool {
	for {
		added, ok := t.put(key, value)
		if ok {
			return added
		}

		t.logger.Debug("probe sequence exhausted",
			zap.String("key", key),
			zap.Int("capacity", len(t.slots)),
			zap.Int("count", t.count),
			zap.Int("tombstones", t.tombstones))
		t.Resize(len(t.slots) * 2)
	}
}

// put walks the probe sequence of key. A matching key is overwritten in
// place. Otherwise the pair goes into the first tombstone seen, or the
// empty slot that ended the walk. ok is false when neither exists.
func (t *OpenAddressing[V]) put(key string, value V) (added, ok bool) {
	p := newProber(t.probing, t.hash, key, len(t.slots))
	reuse := -1

	for attempt := 0; attempt < len(t.slots); attempt++ {
		idx := p.at(attempt)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if reuse < 0 {
				reuse = idx
			}
			t.claim(reuse, key, value)
			return true, true

		case slotTombstone:
			if reuse < 0 {
				reuse = idx
			}

		case slotOccupied:
			if s.key == key {
				s.value = value
				return false, true
			}
		}
	}

	if reuse < 0 {
		return false, false
	}
	t.claim(reuse, key, value)
	return true, true
}

func (t *OpenAddressing[V]) claim(idx int, key string, value V) {
	s := &t.slots[idx]
	if s.state == slotTombstone {
		t.tombstones--
	}
	s.state = slotOccupied
	s.key = key
	s.value = value
	t.count++
}

// find returns the slot index holding key, or -1.
func (t *OpenAddressing[V]) find(key string) int {
	p := newProber(t.probing, t.hash, key, len(t.slots))

	for attempt := 0; attempt < len(t.slots); attempt++ {
		idx := p.at(attempt)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.key == key {
				return idx
			}
		}
	}
	return -1
}

// Search retrieves the value stored under key.
func (t *OpenAddressing[V]) Search(key string) (V, bool) {
	if idx := t.find(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present. The slot becomes a
// tombstone; once tombstones outnumber live entries the table is rebuilt at
// the same capacity.
func (t *OpenAddressing[V]) Delete(key string) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	t.slots[idx] = slot[V]{state: slotTombstone}
	t.count--
	t.tombstones++

	if t.tombstones > t.count {
		t.logger.Debug("compact",
			zap.Int("capacity", len(t.slots)),
			zap.Int("count", t.count),
			zap.Int("tombstones", t.tombstones))
		t.Resize(len(t.slots))
	}
	return true
}

// Resize rebuilds the slot array with newCapacity empty slots and re-places
// every live entry. Tombstones are dropped. Non-positive capacities are
// ignored.
func (t *OpenAddressing[V]) Resize(newCapacity int) {
	if newCapacity <= 0 {
		return
	}

	t.logger.Debug("resize",
		zap.Int("from", len(t.slots)),
		zap.Int("to", newCapacity),
		zap.Int("count", t.count),
		zap.Int("tombstones", t.tombstones))

	old := t.slots
	t.slots = make([]slot[V], newCapacity)
	t.count = 0
	t.tombstones = 0

	for i := range old {
		if old[i].state == slotOccupied {
			t.putWithRetry(old[i].key, old[i].value)
		}
	}
}

// Len returns the number of live entries.
func (t *OpenAddressing[V]) Len() int { return t.count }

// Capacity returns the number of slots.
func (t *OpenAddressing[V]) Capacity() int { return len(t.slots) }

// Tombstones returns the number of deleted slots awaiting compaction.
func (t *OpenAddressing[V]) Tombstones() int { return t.tombstones }

// LoadFactor returns (live entries + tombstones)/capacity.
func (t *OpenAddressing[V]) LoadFactor() float64 {
	return float64(t.count+t.tombstones) / float64(len(t.slots))
}

// EffectiveLoadFactor returns live entries/capacity.
func (t *OpenAddressing[V]) EffectiveLoadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// HashKind returns the hash function the table was built with.
func (t *OpenAddressing[V]) HashKind() HashKind { return t.hashKind }

// Probing returns the probe sequence the table was built with.
func (t *OpenAddressing[V]) Probing() Probing { return t.probing }

// CollisionStats counts keys displaced from their home slot and the longest
// probe needed to reach one.
func (t *OpenAddressing[V]) CollisionStats() ProbeStats {
	var stats ProbeStats
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		p := newProber(t.probing, t.hash, t.slots[i].key, len(t.slots))
		if p.home == i {
			continue
		}
		stats.Collisions++
		for attempt := 1; attempt < len(t.slots); attempt++ {
			if p.at(attempt) == i {
				if attempt > stats.MaxProbeLength {
					stats.MaxProbeLength = attempt
				}
				break
			}
		}
	}
	return stats
}
