package hashkv

import "fmt"

// Probing selects the probe sequence of an open-addressing table.
type Probing int

const (
	LinearProbing Probing = iota
	DoubleHashing
)

// ParseProbing resolves a probing method name.
func ParseProbing(name string) (Probing, error) {
	switch name {
	case "linear":
		return LinearProbing, nil
	case "double":
		return DoubleHashing, nil
	}
	return 0, fmt.Errorf("unknown probing method %q: %w", name, ErrInvalidConfiguration)
}

func (p Probing) String() string {
	switch p {
	case LinearProbing:
		return "linear"
	case DoubleHashing:
		return "double"
	}
	return fmt.Sprintf("Probing(%d)", int(p))
}

// prober yields the slot index of attempt a for a key. A prober is bound to
// one capacity; resize builds a new one.
type prober struct {
	home int
	step int
	cap  int
}

func (p prober) at(attempt int) int {
	return (p.home + attempt*p.step) % p.cap
}

func newProber(method Probing, hash HashFunc, key string, capacity int) prober {
	p := prober{home: hash(key, capacity), step: 1, cap: capacity}
	if method == DoubleHashing && capacity > 1 {
		p.step = 1 + hash(key, capacity-1)
	}
	return p
}
