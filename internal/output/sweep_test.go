package output

import (
	"strings"
	"testing"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepFixture() []domain.SweepPoint {
	return []domain.SweepPoint{
		{AffordablePayment: decimal.NewFromInt(700), Comparison: buildTestComparison()},
		{AffordablePayment: decimal.NewFromInt(800), Comparison: buildTestComparison()},
	}
}

func TestFormatSweep_Table(t *testing.T) {
	out, err := FormatSweep(sweepFixture(), "console")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "AFFORDABILITY SENSITIVITY", lines[0])
	assert.Contains(t, lines[2], "Reduce Payment")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[4]), "700.00"))
	assert.True(t, strings.HasSuffix(lines[5], "Reduce Payment"))
}

func TestFormatSweep_CSV(t *testing.T) {
	out, err := FormatSweep(sweepFixture(), "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "700.00,mix,600.00,18,400.00,6,false", lines[1])
	assert.Equal(t, "800.00,reduce_payment,500.00,20,500.00,4,true", lines[5])
}

func TestFormatSweep_Unsupported(t *testing.T) {
	_, err := FormatSweep(sweepFixture(), "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatSchedule(t *testing.T) {
	res := buildTestComparison().Strategies[1].Result

	out, err := FormatSchedule(&res, "", "console", "PLN")
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "\n--- Reduce Payment ---"))
	assert.Contains(t, text, "Total interest paid: 500.00 PLN, total months: 20")
	assert.NotContains(t, text, "Total overpaid")

	out, err = FormatSchedule(&res, "", "csv", "PLN")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 21)
	assert.Equal(t, "2026-08,600.00,0.00,10.00,590.00,0.00", lines[20])

	_, err = FormatSchedule(&res, "", "html", "PLN")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatSchedule_BaselineLabel(t *testing.T) {
	res := buildTestComparison().Baseline

	out, err := FormatSchedule(&res, BaselineLabel, "console", "PLN")
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "\n--- Original (no overpay) ---"))
	assert.NotContains(t, text, "Reduce Term")
}
