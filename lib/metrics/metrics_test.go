package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveTable(t *testing.T) {
	before := testutil.ToFloat64(RehashCount.WithLabelValues("test"))
	ObserveTable("test", 2, 2, 3)
	require.Equal(t, before, testutil.ToFloat64(RehashCount.WithLabelValues("test")))
	ObserveTable("test", 2, 5, 7)
	require.Equal(t, before+1, testutil.ToFloat64(RehashCount.WithLabelValues("test")))
	require.Equal(t, 5.0, testutil.ToFloat64(TableLength.WithLabelValues("test")))
	require.Equal(t, 7.0, testutil.ToFloat64(TableSize.WithLabelValues("test")))
}

func TestIncCommand(t *testing.T) {
	before := testutil.ToFloat64(CommandCount.WithLabelValues("ping"))
	IncCommand("ping")
	require.Equal(t, before+1, testutil.ToFloat64(CommandCount.WithLabelValues("ping")))
}
