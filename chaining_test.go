package hashkv_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/hashkv"
)

func newChaining(t *testing.T, capacity int, threshold float64) *hashkv.Chaining[string] {
	t.Helper()
	cfg := hashkv.DefaultConfig()
	cfg.Capacity = capacity
	cfg.LoadFactorThreshold = threshold
	table, err := hashkv.NewChaining[string](cfg)
	require.NoError(t, err)
	return table
}

func TestChainingResizeOperation(t *testing.T) {
	table := newChaining(t, 5, 0.6)

	for i := 0; i < 10; i++ {
		table.Insert(fmt.Sprintf("key%d", i), fmt.Sprintf("value%d", i))
		assert.LessOrEqual(t, table.LoadFactor(), 0.6)
	}
	require.Equal(t, 20, table.Capacity())

	for i := 0; i < 10; i++ {
		v, ok := table.Search(fmt.Sprintf("key%d", i))
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("value%d", i), v)
	}
}

func TestChainingCollisionStats(t *testing.T) {
	// Under the simple hash at capacity 10: a and k share bucket 7.
	table := newChaining(t, 10, 1.0)

	for _, key := range []string{"a", "b", "c", "d", "k"} {
		table.Insert(key, key)
	}

	want := hashkv.ChainingStats{Collisions: 1, AvgChainLength: 0.5}
	if diff := cmp.Diff(want, table.CollisionStats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	require.True(t, table.Delete("a"))
	want = hashkv.ChainingStats{Collisions: 0, AvgChainLength: 0.4}
	if diff := cmp.Diff(want, table.CollisionStats()); diff != "" {
		t.Errorf("stats mismatch after delete (-want +got):\n%s", diff)
	}

	v, ok := table.Search("k")
	require.True(t, ok, "removing the head of a chain must keep the rest")
	require.Equal(t, "k", v)
}

func TestChainingExplicitResize(t *testing.T) {
	table := newChaining(t, 3, 1.0)
	for _, key := range []string{"a", "b", "c"} {
		table.Insert(key, key+key)
	}

	table.Resize(17)
	require.Equal(t, 17, table.Capacity())
	require.Equal(t, 3, table.Len())
	for _, key := range []string{"a", "b", "c"} {
		v, ok := table.Search(key)
		require.True(t, ok)
		require.Equal(t, key+key, v)
	}

	table.Resize(-1)
	require.Equal(t, 17, table.Capacity())
}

func TestChainingSmallThresholdGrowsPastDouble(t *testing.T) {
	table := newChaining(t, 3, 0.1)

	table.Insert("only", "v")
	require.LessOrEqual(t, table.LoadFactor(), 0.1)
	require.Equal(t, 12, table.Capacity())
}
