package fin

import (
	"errors"
	"testing"

	"github.com/oakmund/finsight/internal/core"
)

func TestAnalyzePortfolio(t *testing.T) {
	// Every price draw is 0.5 -> 275.00 per share.
	svc := testService(&stubRand{floats: []float64{0.5}})

	summary, err := svc.AnalyzePortfolio([]core.Holding{
		{Symbol: "AAPL", Shares: 10, AverageCost: 200},
		{Symbol: "MSFT", Shares: 4, AverageCost: 300},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// value = 14*275 = 3850; cost = 10*200 + 4*300 = 3200; gain = 650.
	if summary.TotalValue != 3850.00 {
		t.Errorf("total value = %v, want 3850.00", summary.TotalValue)
	}
	if summary.TotalGainLoss != 650.00 {
		t.Errorf("gain/loss = %v, want 650.00", summary.TotalGainLoss)
	}
	if summary.GainLossPercent != 20.31 {
		t.Errorf("gain/loss percent = %v, want 20.31", summary.GainLossPercent)
	}
	if summary.NumPositions != 2 {
		t.Errorf("positions = %d, want 2", summary.NumPositions)
	}
}

func TestAnalyzePortfolio_Empty(t *testing.T) {
	svc := New()
	summary, err := svc.AnalyzePortfolio(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != (core.PortfolioSummary{}) {
		t.Errorf("empty portfolio should yield all-zero summary, got %+v", summary)
	}
}

func TestAnalyzePortfolio_InvalidShares(t *testing.T) {
	svc := New()
	for _, shares := range []float64{0, -5} {
		_, err := svc.AnalyzePortfolio([]core.Holding{{Symbol: "AAPL", Shares: shares, AverageCost: 100}})
		if !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("shares=%v error = %v, want INVALID_ARGUMENT", shares, err)
		}
	}
}
