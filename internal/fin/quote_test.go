package fin

import (
	"errors"
	"testing"

	"github.com/oakmund/finsight/internal/core"
)

func TestGetStockPrice_Fixed(t *testing.T) {
	// Float64 = 0.5 twice: price = 50 + 0.5*450 = 275, change = -10 + 0.5*20 = 0.
	svc := testService(&stubRand{floats: []float64{0.5, 0.5}})

	quote, err := svc.GetStockPrice("aapl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Symbol != "AAPL" {
		t.Errorf("symbol should be upper-cased, got %s", quote.Symbol)
	}
	if quote.Price != 275.00 {
		t.Errorf("price = %v, want 275.00", quote.Price)
	}
	if quote.Change != 0 {
		t.Errorf("change = %v, want 0", quote.Change)
	}
	if quote.ChangePercent != 0 {
		t.Errorf("change percent = %v, want 0", quote.ChangePercent)
	}
	if !quote.Timestamp.Equal(testNow) {
		t.Errorf("timestamp = %v, want %v", quote.Timestamp, testNow)
	}
}

func TestGetStockPrice_Bounds(t *testing.T) {
	// Lower bound of both draws.
	svc := testService(&stubRand{floats: []float64{0, 0}})
	quote, err := svc.GetStockPrice("TSLA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Price != 50.00 {
		t.Errorf("price = %v, want 50.00", quote.Price)
	}
	if quote.Change != -10.00 {
		t.Errorf("change = %v, want -10.00", quote.Change)
	}
	if quote.ChangePercent != -20.00 {
		t.Errorf("change percent = %v, want -20.00 (=-10/50*100)", quote.ChangePercent)
	}
}

func TestGetStockPrice_Range(t *testing.T) {
	svc := New()
	for i := 0; i < 100; i++ {
		quote, err := svc.GetStockPrice("NVDA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Price < 50 || quote.Price >= 500 {
			t.Fatalf("price %v outside [50, 500)", quote.Price)
		}
		if quote.Change < -10 || quote.Change >= 10 {
			t.Fatalf("change %v outside [-10, 10)", quote.Change)
		}
		if !quote.IsValid() {
			t.Fatalf("generated quote should be valid: %+v", quote)
		}
	}
}

func TestGetStockPrice_EmptySymbol(t *testing.T) {
	svc := New()
	for _, symbol := range []string{"", "   "} {
		if _, err := svc.GetStockPrice(symbol); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("GetStockPrice(%q) error = %v, want INVALID_ARGUMENT", symbol, err)
		}
	}
}
