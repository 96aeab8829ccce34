package fin

import (
	"fmt"

	"github.com/oakmund/finsight/internal/core"
)

// AnalyzePortfolio values a set of holdings at simulated current prices and
// reports the aggregate gain/loss. Each holding is priced through
// GetStockPrice, so the result is not reproducible across calls. An empty
// holdings list yields an all-zero summary.
func (s *Service) AnalyzePortfolio(holdings []core.Holding) (core.PortfolioSummary, error) {
	var totalValue, totalCost float64

	for _, h := range holdings {
		if h.Shares <= 0 {
			return core.PortfolioSummary{}, core.WrapError(core.ErrInvalidArgument,
				fmt.Errorf("holding %s: shares must be > 0, got %v", h.Symbol, h.Shares))
		}
		quote, err := s.GetStockPrice(h.Symbol)
		if err != nil {
			return core.PortfolioSummary{}, err
		}
		totalCost += h.Shares * h.AverageCost
		totalValue += h.Shares * quote.Price
	}

	totalGainLoss := totalValue - totalCost
	gainLossPercent := 0.0
	if totalCost > 0 {
		gainLossPercent = totalGainLoss / totalCost * 100
	}

	return core.PortfolioSummary{
		TotalValue:      round2(totalValue),
		TotalGainLoss:   round2(totalGainLoss),
		GainLossPercent: round2(gainLossPercent),
		NumPositions:    len(holdings),
	}, nil
}
