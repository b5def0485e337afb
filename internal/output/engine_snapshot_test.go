package output_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/overpayment-simulator/internal/calculation"
	"github.com/rpgo/overpayment-simulator/internal/config"
	"github.com/rpgo/overpayment-simulator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end: loan file -> comparison -> every registered formatter.
func TestEngineToReports(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(filepath.Join("..", "config", "testdata", "loan.yaml"))
	require.NoError(t, err)
	params, err := parser.ToParameters(cfg)
	require.NoError(t, err)

	results, err := calculation.NewSimulator().CompareStrategies(context.Background(), params)
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, name)
		data, err := f.Format(results)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}

	rec := output.AnalyzeStrategies(results)
	assert.Equal(t, "Reduce Payment", rec.StrategyName)
	assert.Equal(t, 365, rec.MaxMonthsSaved)

	dir := t.TempDir()
	files, err := output.GenerateReport(results, "all", dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	text, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(text), "Best for MAXIMUM SAVINGS: Reduce Payment"))
}
