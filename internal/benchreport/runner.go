package benchreport

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/theflywheel/hashkv"
	"github.com/theflywheel/hashkv/internal/workload"
)

// Matrix is the grid of configurations measured by Run.
type Matrix struct {
	Sizes       []int     `toml:"sizes"`
	LoadFactors []float64 `toml:"load_factors"`
	Strategies  []string  `toml:"strategies"`
	HashFuncs   []string  `toml:"hash_funcs"`
	KeyLength   int       `toml:"key_length"`
	Seed        int64     `toml:"seed"`

	// table size and fill used for the per-hash-function collision comparison
	CompareSize int     `toml:"compare_size"`
	CompareLoad float64 `toml:"compare_load"`
}

// DefaultMatrix measures sizes 100, 500 and 1000 at load factors 0.1 to 0.9
// for every strategy and hash function.
func DefaultMatrix() Matrix {
	return Matrix{
		Sizes:       []int{100, 500, 1000},
		LoadFactors: []float64{0.1, 0.5, 0.7, 0.9},
		Strategies:  append([]string(nil), hashkv.Strategies...),
		HashFuncs:   []string{"simple", "polynomial", "djb2", "xxhash"},
		KeyLength:   10,
		Seed:        1,
		CompareSize: 100,
		CompareLoad: 0.7,
	}
}

func (m Matrix) validate() error {
	if len(m.Sizes) == 0 || len(m.LoadFactors) == 0 || len(m.Strategies) == 0 || len(m.HashFuncs) == 0 {
		return errors.New("matrix has an empty dimension")
	}
	if m.KeyLength <= 0 {
		return fmt.Errorf("key length %d must be positive", m.KeyLength)
	}
	for _, lf := range m.LoadFactors {
		if lf <= 0 {
			return fmt.Errorf("load factor %v must be positive", lf)
		}
	}
	return nil
}

// Run measures every configuration of m. Each (size, load factor) cell uses
// one generated data set shared by all strategies and hash functions.
func Run(m Matrix, logger *zap.Logger) (Summary, error) {
	if err := m.validate(); err != nil {
		return Summary{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	gen := workload.NewGenerator(m.Seed)
	summary := Summary{
		Timestamp: CreateTimestamp(),
		GoVersion: runtime.Version(),
		Seed:      m.Seed,
	}

	for _, size := range m.Sizes {
		for _, lf := range m.LoadFactors {
			pairs := gen.Pairs(int(float64(size)*lf), m.KeyLength)

			for _, strategy := range m.Strategies {
				for _, hash := range m.HashFuncs {
					res, err := measure(strategy, hash, size, lf, pairs)
					if err != nil {
						return Summary{}, err
					}
					logger.Info("measured",
						zap.String("name", res.Name),
						zap.Float64("insert_ns_per_op", res.Metrics[MetricInsertNsPerOp]),
						zap.Float64("search_ns_per_op", res.Metrics[MetricSearchNsPerOp]),
						zap.Float64("collisions", res.Metrics[MetricCollisions]))
					summary.Results = append(summary.Results, res)
				}
			}
		}
	}

	if m.CompareSize > 0 && m.CompareLoad > 0 {
		pairs := gen.Pairs(int(float64(m.CompareSize)*m.CompareLoad), m.KeyLength)
		for _, hash := range m.HashFuncs {
			res, err := hashCollisions(hash, m.CompareSize, m.CompareLoad, pairs)
			if err != nil {
				return Summary{}, err
			}
			logger.Info("hash collisions",
				zap.String("hash", hash),
				zap.Float64("collisions", res.Metrics[MetricCollisions]))
			summary.Results = append(summary.Results, res)
		}
	}

	return summary, nil
}

func resultName(strategy, hash string, size int, lf float64) string {
	return fmt.Sprintf("%s/%s/size=%d/load=%.2f", strategy, hash, size, lf)
}

func measure(strategy, hash string, size int, lf float64, pairs []workload.Pair) (Result, error) {
	cfg := hashkv.DefaultConfig()
	cfg.Capacity = size
	cfg.HashFunc = hash

	table, err := hashkv.New[string](strategy, cfg)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	for _, p := range pairs {
		table.Insert(p.Key, p.Value)
	}
	insertTime := time.Since(start)

	start = time.Now()
	for _, p := range pairs {
		table.Search(p.Key)
	}
	searchTime := time.Since(start)

	metrics := map[string]float64{
		MetricCollisions: float64(collisions(table)),
		MetricLoadFactor: table.LoadFactor(),
		MetricCapacity:   float64(table.Capacity()),
	}
	addRate(metrics, MetricInsertNsPerOp, MetricInsertOpsPerSec, insertTime, len(pairs))
	addRate(metrics, MetricSearchNsPerOp, MetricSearchOpsPerSec, searchTime, len(pairs))

	return Result{
		Name:       resultName(strategy, hash, size, lf),
		Category:   CategoryMatrix,
		Strategy:   strategy,
		Hash:       hash,
		Size:       size,
		TargetLoad: lf,
		Elements:   len(pairs),
		Metrics:    metrics,
	}, nil
}

func hashCollisions(hash string, size int, lf float64, pairs []workload.Pair) (Result, error) {
	cfg := hashkv.DefaultConfig()
	cfg.Capacity = size
	cfg.HashFunc = hash

	table, err := hashkv.NewChaining[string](cfg)
	if err != nil {
		return Result{}, err
	}
	for _, p := range pairs {
		table.Insert(p.Key, p.Value)
	}

	stats := table.CollisionStats()
	return Result{
		Name:       "collisions/" + hash,
		Category:   CategoryHash,
		Strategy:   hashkv.StrategyChaining,
		Hash:       hash,
		Size:       size,
		TargetLoad: lf,
		Elements:   len(pairs),
		Metrics: map[string]float64{
			MetricCollisions: float64(stats.Collisions),
			MetricLoadFactor: table.LoadFactor(),
			MetricCapacity:   float64(table.Capacity()),
		},
	}, nil
}

func collisions(table hashkv.Table[string]) int {
	switch t := table.(type) {
	case *hashkv.Chaining[string]:
		return t.CollisionStats().Collisions
	case *hashkv.OpenAddressing[string]:
		return t.CollisionStats().Collisions
	}
	return 0
}

func addRate(metrics map[string]float64, nsKey, rateKey string, d time.Duration, ops int) {
	if ops == 0 {
		return
	}
	nsPerOp := float64(d.Nanoseconds()) / float64(ops)
	metrics[nsKey] = nsPerOp
	if nsPerOp > 0 {
		metrics[rateKey] = 1_000_000_000 / nsPerOp
	}
}
