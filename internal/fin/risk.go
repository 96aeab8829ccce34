package fin

import (
	"fmt"
	"strings"

	"github.com/oakmund/finsight/internal/core"
)

// AssessRisk tiers a portfolio by beta and volatility and returns tier-specific
// recommendations. The High check runs before Medium, so a portfolio matching
// both conditions is High. Both beta thresholds are strict (beta == 1.2 is not
// High).
func (s *Service) AssessRisk(beta, volatilityPercent float64, diversificationScore int) core.FinancialAnalysis {
	level := core.RiskLow
	switch {
	case beta > 1.2 || volatilityPercent > 25:
		level = core.RiskHigh
	case beta > 0.8 || volatilityPercent > 15:
		level = core.RiskMedium
	}

	var recommendations []string
	switch level {
	case core.RiskHigh:
		recommendations = append(recommendations,
			"Consider reducing high-beta positions",
			"Add defensive stocks and bonds",
			"Increase cash position")
	case core.RiskMedium:
		recommendations = append(recommendations,
			"Maintain current allocation",
			"Consider gradual rebalancing")
	default:
		recommendations = append(recommendations,
			"Your portfolio is well-positioned",
			"Consider growth opportunities")
	}

	if diversificationScore < 6 {
		recommendations = append(recommendations, "Improve diversification across sectors")
	}

	return core.FinancialAnalysis{
		Metric: "Risk Level",
		Value:  beta,
		Interpretation: fmt.Sprintf("Portfolio risk level: %s. Beta: %v, Volatility: %v%%",
			level, beta, volatilityPercent),
		Recommendation: strings.Join(recommendations, "; "),
	}
}
