package fin

import (
	"math"
	"strings"
	"testing"
)

func TestConvertCurrency(t *testing.T) {
	svc := New()

	tests := []struct {
		amount   float64
		from, to string
		want     float64
	}{
		{100, "USD", "EUR", 92.00},
		{100, "EUR", "USD", 108.70},
		{100, "USD", "JPY", 14950.00},
		{50, "USD", "USD", 50.00},
		{1000, "PKR", "USD", 3.59},
	}

	for _, tt := range tests {
		got := svc.ConvertCurrency(tt.amount, tt.from, tt.to)
		if got.Value != tt.want {
			t.Errorf("ConvertCurrency(%v, %s, %s) = %v, want %v",
				tt.amount, tt.from, tt.to, got.Value, tt.want)
		}
	}
}

func TestConvertCurrency_CaseInsensitive(t *testing.T) {
	svc := New()
	got := svc.ConvertCurrency(100, "usd", "eur")
	if got.Value != 92.00 {
		t.Errorf("lower-case codes should convert, got %v", got.Value)
	}
	if !strings.Contains(got.Interpretation, "USD") || !strings.Contains(got.Interpretation, "EUR") {
		t.Errorf("interpretation should carry upper-cased codes, got %q", got.Interpretation)
	}
}

func TestConvertCurrency_UnknownCode(t *testing.T) {
	svc := New()
	// Unknown codes fall back to rate 1.0, so the amount passes through.
	got := svc.ConvertCurrency(250, "USD", "XYZ")
	if got.Value != 250.00 {
		t.Errorf("unknown code should pass amount through, got %v", got.Value)
	}
}

func TestConvertCurrency_RoundTrip(t *testing.T) {
	svc := New()
	const amount = 100.0

	for from := range exchangeRates {
		for to := range exchangeRates {
			forward := svc.ConvertCurrency(amount, from, to)
			back := svc.ConvertCurrency(forward.Value, to, from)

			// The intermediate value is rounded to 2 decimals, so the
			// recoverable error scales with the rate ratio.
			tolerance := 0.005*exchangeRates[from]/exchangeRates[to] + 0.005
			if diff := math.Abs(back.Value - amount); diff > tolerance {
				t.Errorf("%s->%s->%s: got %v back from %v (diff %v > tolerance %v)",
					from, to, from, back.Value, amount, diff, tolerance)
			}
		}
	}
}
