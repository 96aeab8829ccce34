package fin

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oakmund/finsight/internal/core"
)

// exchangeRates maps a currency code to its rate against USD (units per USD).
// Fixed snapshot; the system does not fetch live rates.
var exchangeRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"CAD": 1.35,
	"AUD": 1.52,
	"CHF": 0.88,
	"PKR": 278.50,
	"INR": 83.12,
	"CNY": 7.24,
	"AED": 3.67,
	"SAR": 3.75,
}

// rateFor returns the USD rate for a currency code. Unknown codes default to
// 1.0 silently; callers see the conversion pass through unchanged.
func rateFor(code string) float64 {
	if rate, ok := exchangeRates[strings.ToUpper(code)]; ok {
		return rate
	}
	return 1.0
}

// ConvertCurrency converts an amount between two currencies via their USD
// cross-rates. The converted value is rounded to 2 decimal places.
func (s *Service) ConvertCurrency(amount float64, from, to string) core.FinancialAnalysis {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	fromRate := rateFor(from)
	toRate := rateFor(to)

	converted, _ := decimal.NewFromFloat(amount).
		Div(decimal.NewFromFloat(fromRate)).
		Mul(decimal.NewFromFloat(toRate)).
		Round(2).
		Float64()

	return core.FinancialAnalysis{
		Metric:         "Currency Conversion",
		Value:          converted,
		Interpretation: fmt.Sprintf("%v %s = %.2f %s", amount, from, converted, to),
		Recommendation: fmt.Sprintf("Conversion rate: %.4f %s/USD, %.4f %s/USD",
			1/fromRate, from, toRate, to),
	}
}
