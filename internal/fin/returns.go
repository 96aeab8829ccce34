package fin

import (
	"fmt"
	"math"

	"github.com/oakmund/finsight/internal/core"
)

// CalculateReturns computes total return and CAGR for an investment held over
// a period of years. Zero or negative initial investment or period is
// rejected rather than producing NaN/Inf.
func (s *Service) CalculateReturns(initialInvestment, finalValue, periodYears float64) (core.FinancialAnalysis, error) {
	if initialInvestment <= 0 {
		return core.FinancialAnalysis{}, core.WrapError(core.ErrInvalidArgument,
			fmt.Errorf("initial investment must be > 0, got %v", initialInvestment))
	}
	if periodYears <= 0 {
		return core.FinancialAnalysis{}, core.WrapError(core.ErrInvalidArgument,
			fmt.Errorf("period must be > 0 years, got %v", periodYears))
	}

	totalReturn := finalValue - initialInvestment
	totalReturnPercent := totalReturn / initialInvestment * 100
	cagr := (math.Pow(finalValue/initialInvestment, 1/periodYears) - 1) * 100

	var recommendation string
	switch {
	case cagr > 10:
		recommendation = "Excellent performance! Consider maintaining your strategy."
	case cagr > 5:
		recommendation = "Good performance. Continue monitoring and diversifying."
	default:
		recommendation = "Review investment strategy for better returns."
	}

	interpretation := fmt.Sprintf("Your investment grew by %.2f%% over %v years. Annualized return: %.2f%%",
		totalReturnPercent, periodYears, cagr)

	return core.FinancialAnalysis{
		Metric:         "CAGR",
		Value:          round2(cagr),
		Interpretation: interpretation,
		Recommendation: recommendation,
	}, nil
}
