package core

import "time"

// Route identifies which specialist handles a query.
type Route string

const (
	RouteStock     Route = "stock"
	RoutePortfolio Route = "portfolio"
	RouteNews      Route = "news"
	RouteCurrency  Route = "currency"
	RouteDefault   Route = "default"
)

// Quote represents a simulated price quote for a single symbol.
// Quotes are generated fresh on every request and never cached.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Timestamp     time.Time `json:"timestamp"`
}

// IsValid checks if the quote has required fields
func (q Quote) IsValid() bool {
	return q.Symbol != "" && q.Price > 0
}

// NewsItem represents a single market news entry.
type NewsItem struct {
	Headline  string    `json:"headline"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Summary   string    `json:"summary"`
}

// Holding is one position in a portfolio, supplied by the caller.
type Holding struct {
	Symbol      string  `json:"symbol"`
	Shares      float64 `json:"shares"`
	AverageCost float64 `json:"average_cost"`
}

// PortfolioSummary aggregates the current value of a set of holdings.
type PortfolioSummary struct {
	TotalValue      float64 `json:"total_value"`
	TotalGainLoss   float64 `json:"total_gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
	NumPositions    int     `json:"num_positions"`
}

// FinancialAnalysis is the generic result envelope shared by the
// returns, currency and risk calculators.
type FinancialAnalysis struct {
	Metric         string  `json:"metric"`
	Value          float64 `json:"value"`
	Interpretation string  `json:"interpretation"`
	Recommendation string  `json:"recommendation"`
}

// RiskLevel is the tier assigned by the risk calculator.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)
