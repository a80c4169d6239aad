package hashkv

import "fmt"

// Table is the operation set shared by every hash table in this package.
type Table[V any] interface {
	Insert(key string, value V)
	Search(key string) (V, bool)
	Delete(key string) bool
	Len() int
	Capacity() int
	LoadFactor() float64
}

// Strategy names accepted by New.
const (
	StrategyChaining = "chaining"
	StrategyLinear   = "linear"
	StrategyDouble   = "double"
)

// Strategies lists every strategy name accepted by New.
var Strategies = []string{StrategyChaining, StrategyLinear, StrategyDouble}

var (
	_ Table[int] = (*Chaining[int])(nil)
	_ Table[int] = (*OpenAddressing[int])(nil)
)

// New builds a table by strategy name. For linear and double the strategy
// overrides cfg.Probing.
func New[V any](strategy string, cfg Config, opts ...Option) (Table[V], error) {
	switch strategy {
	case StrategyChaining:
		t, err := NewChaining[V](cfg, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case StrategyLinear, StrategyDouble:
		cfg.Probing = strategy
		t, err := NewOpenAddressing[V](cfg, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("unknown strategy %q: %w", strategy, ErrInvalidConfiguration)
}
