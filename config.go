package hashkv

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	defaultCapacity  = 101
	defaultThreshold = 0.7
)

// Config describes a table. Names are resolved once by the constructors.
type Config struct {
	// initial number of buckets or slots; a prime spreads keys best
	Capacity int `toml:"capacity"`

	// one of simple, polynomial, djb2, xxhash; empty means simple
	HashFunc string `toml:"hash"`

	// one of linear, double; empty means linear. Ignored by the chaining table.
	Probing string `toml:"probing"`

	// grow once count/capacity exceeds this, in (0, 1]
	LoadFactorThreshold float64 `toml:"load_factor_threshold"`
}

// DefaultConfig returns a 101-slot simple-hash, linear-probing config with a
// 0.7 threshold.
func DefaultConfig() Config {
	return Config{
		Capacity:            defaultCapacity,
		HashFunc:            HashSimple.String(),
		Probing:             LinearProbing.String(),
		LoadFactorThreshold: defaultThreshold,
	}
}

// LoadConfig decodes a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if _, err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolved is a validated Config with names turned into functions.
type resolved struct {
	capacity  int
	threshold float64
	hashKind  HashKind
	hash      HashFunc
	probing   Probing
}

func (c Config) resolve() (resolved, error) {
	if c.Capacity <= 0 {
		return resolved{}, fmt.Errorf("capacity %d must be positive: %w", c.Capacity, ErrInvalidConfiguration)
	}
	if !(c.LoadFactorThreshold > 0 && c.LoadFactorThreshold <= 1) {
		return resolved{}, fmt.Errorf("load factor threshold %v not in (0, 1]: %w",
			c.LoadFactorThreshold, ErrInvalidConfiguration)
	}
	kind, probing := HashSimple, LinearProbing
	var err error
	if c.HashFunc != "" {
		if kind, err = ParseHashKind(c.HashFunc); err != nil {
			return resolved{}, err
		}
	}
	if c.Probing != "" {
		if probing, err = ParseProbing(c.Probing); err != nil {
			return resolved{}, err
		}
	}
	return resolved{
		capacity:  c.Capacity,
		threshold: c.LoadFactorThreshold,
		hashKind:  kind,
		hash:      kind.Func(),
		probing:   probing,
	}, nil
}

// Option customizes a table at construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes resize and compaction events to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
