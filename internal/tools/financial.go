package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oakmund/finsight/internal/core"
	"github.com/oakmund/finsight/internal/fin"
	"github.com/oakmund/finsight/internal/specialist"
)

type stockPriceArgs struct {
	Symbol string `json:"symbol"`
}

type marketNewsArgs struct {
	Category string `json:"category"`
	Limit    *int   `json:"limit"`
}

type portfolioArgs struct {
	Holdings []core.Holding `json:"holdings"`
}

type returnsArgs struct {
	InitialInvestment float64 `json:"initial_investment"`
	FinalValue        float64 `json:"final_value"`
	PeriodYears       float64 `json:"period_years"`
}

type currencyArgs struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
}

type riskArgs struct {
	PortfolioBeta        float64 `json:"portfolio_beta"`
	Volatility           float64 `json:"volatility"`
	DiversificationScore int     `json:"diversification_score"`
}

func decode(args json.RawMessage, into any) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, into); err != nil {
		return core.WrapError(core.ErrInvalidArgument, fmt.Errorf("decoding tool arguments: %w", err))
	}
	return nil
}

// NewFinancialRegistry builds a registry exposing every financial calculator.
func NewFinancialRegistry(svc *fin.Service) *Registry {
	r := NewRegistry()

	r.Register(Tool{
		Name:        specialist.ToolGetStockPrice,
		Description: `current price and recent performance for a ticker; arguments: {"symbol": "AAPL"}`,
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			var a stockPriceArgs
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return svc.GetStockPrice(a.Symbol)
		},
	})

	r.Register(Tool{
		Name:        specialist.ToolGetMarketNews,
		Description: `latest market news; arguments: {"category": "stocks|crypto|economy|tech", "limit": 5}`,
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			var a marketNewsArgs
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			limit := fin.DefaultNewsLimit
			if a.Limit != nil {
				limit = *a.Limit
			}
			return svc.GetMarketNews(a.Category, limit)
		},
	})

	r.Register(Tool{
		Name:        specialist.ToolAnalyzePortfolio,
		Description: `portfolio valuation; arguments: {"holdings": [{"symbol": "MSFT", "shares": 50, "average_cost": 300}]}`,
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			var a portfolioArgs
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return svc.AnalyzePortfolio(a.Holdings)
		},
	})

	r.Register(Tool{
		Name:        specialist.ToolCalculateReturns,
		Description: `total return and CAGR; arguments: {"initial_investment": 10000, "final_value": 15000, "period_years": 3}`,
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			var a returnsArgs
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return svc.CalculateReturns(a.InitialInvestment, a.FinalValue, a.PeriodYears)
		},
	})

	r.Register(Tool{
		Name:        specialist.ToolCurrencyConverter,
		Description: `currency conversion; arguments: {"amount": 100, "from_currency": "USD", "to_currency": "EUR"}`,
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			var a currencyArgs
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return svc.ConvertCurrency(a.Amount, a.FromCurrency, a.ToCurrency), nil
		},
	})

	r.Register(Tool{
		Name:        specialist.ToolRiskAssessment,
		Description: `portfolio risk tiering; arguments: {"portfolio_beta": 1.1, "volatility": 18, "diversification_score": 7}`,
		Call: func(ctx context.Context, args json.RawMessage) (any, error) {
			var a riskArgs
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return svc.AssessRisk(a.PortfolioBeta, a.Volatility, a.DiversificationScore), nil
		},
	})

	return r
}
