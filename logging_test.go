package hashkv_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theflywheel/hashkv"
)

func TestResizeEventsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	cfg := hashkv.DefaultConfig()
	cfg.Capacity = 3
	cfg.LoadFactorThreshold = 1.0
	table, err := hashkv.NewOpenAddressing[string](cfg, hashkv.WithLogger(logger))
	require.NoError(t, err)

	for _, key := range []string{"a", "b", "c", "d"} {
		table.Insert(key, key)
	}

	require.Equal(t, 1, logs.FilterMessage("probe sequence exhausted").Len())
	resizes := logs.FilterMessage("resize").All()
	require.Len(t, resizes, 1)
	fields := resizes[0].ContextMap()
	require.EqualValues(t, 3, fields["from"])
	require.EqualValues(t, 6, fields["to"])
	require.Equal(t, "open_addressing", fields["table"])

	require.True(t, table.Delete("a"))
	require.True(t, table.Delete("b"))
	require.True(t, table.Delete("c"))
	require.Equal(t, 1, logs.FilterMessage("compact").Len())
}

func TestChainingLogsResize(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	cfg := hashkv.DefaultConfig()
	cfg.Capacity = 2
	cfg.HashFunc = "djb2"
	table, err := hashkv.NewChaining[int](cfg, hashkv.WithLogger(zap.New(core)))
	require.NoError(t, err)

	table.Insert("x", 1)
	table.Insert("y", 2)

	entries := logs.FilterMessage("resize").All()
	require.Len(t, entries, 1)
	require.Equal(t, "djb2", entries[0].ContextMap()["hash"])
}
