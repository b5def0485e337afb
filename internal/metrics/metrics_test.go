package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSimulation(t *testing.T) {
	before := testutil.ToFloat64(Simulations.WithLabelValues("metrics_test", StatusOK))
	ObserveSimulation("metrics_test", StatusOK, 120)
	ObserveSimulation("metrics_test", StatusDivergence, 0)

	assert.Equal(t, before+1, testutil.ToFloat64(Simulations.WithLabelValues("metrics_test", StatusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(Simulations.WithLabelValues("metrics_test", StatusDivergence)))
}

func TestWriteTextfile(t *testing.T) {
	ObserveSimulation("textfile_test", StatusOK, 36)

	path := filepath.Join(t.TempDir(), "overpay.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "overpay_simulations_total")
	assert.Contains(t, string(data), `strategy="textfile_test"`)
}
