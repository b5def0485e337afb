package output

import (
	"testing"

	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAnalyzeStrategies_MaximaAcrossStrategies(t *testing.T) {
	rec := AnalyzeStrategies(buildTestComparison())
	if rec.Strategy != domain.StrategyReducePayment || rec.StrategyName != "Reduce Payment" {
		t.Fatalf("best strategy = %v (%q), want Reduce Payment", rec.Strategy, rec.StrategyName)
	}
	// savings peak on Reduce Payment, months saved peak on Mix
	if !rec.MaxInterestSaved.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("max interest saved = %s, want 500", rec.MaxInterestSaved)
	}
	if rec.MaxMonthsSaved != 6 {
		t.Fatalf("max months saved = %d, want 6", rec.MaxMonthsSaved)
	}
}

func TestAnalyzeStrategies_Empty(t *testing.T) {
	if rec := AnalyzeStrategies(&domain.StrategyComparison{}); rec.StrategyName != "" {
		t.Fatalf("expected empty recommendation, got %+v", rec)
	}
	if rec := AnalyzeStrategies(nil); rec.StrategyName != "" {
		t.Fatalf("expected empty recommendation for nil, got %+v", rec)
	}
}

func TestMaxInterestAndMonths(t *testing.T) {
	cmp := buildTestComparison()
	if got := maxInterest(cmp); !got.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("maxInterest = %s, want 1000", got)
	}
	if got := maxMonths(cmp); got != 24 {
		t.Fatalf("maxMonths = %d, want 24", got)
	}
}
