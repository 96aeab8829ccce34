package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmund/finsight/internal/core"
	"github.com/oakmund/finsight/internal/fin"
	"github.com/oakmund/finsight/internal/specialist"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	tool := Tool{Name: "t1", Description: "test", Call: func(context.Context, json.RawMessage) (any, error) { return nil, nil }}

	require.NoError(t, r.Register(tool))
	assert.Error(t, r.Register(tool), "duplicate name should be rejected")
	assert.Error(t, r.Register(Tool{}), "empty name should be rejected")

	got, ok := r.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "t1", got.Name)
}

func TestRegistry_CallUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call(context.Background(), "nope", nil)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestFinancialRegistry_AllRegistered(t *testing.T) {
	r := NewFinancialRegistry(fin.New())
	assert.ElementsMatch(t, specialist.AllTools(), r.Names())
}

func TestFinancialRegistry_StockPrice(t *testing.T) {
	r := NewFinancialRegistry(fin.New())

	out, err := r.Call(context.Background(), specialist.ToolGetStockPrice,
		json.RawMessage(`{"symbol": "googl"}`))
	require.NoError(t, err)

	quote, ok := out.(core.Quote)
	require.True(t, ok, "result should be a Quote, got %T", out)
	assert.Equal(t, "GOOGL", quote.Symbol)
	assert.GreaterOrEqual(t, quote.Price, 50.0)
	assert.Less(t, quote.Price, 500.0)
}

func TestFinancialRegistry_News(t *testing.T) {
	r := NewFinancialRegistry(fin.New())

	// Omitted limit uses the default.
	out, err := r.Call(context.Background(), specialist.ToolGetMarketNews,
		json.RawMessage(`{"category": "crypto"}`))
	require.NoError(t, err)
	items, ok := out.([]core.NewsItem)
	require.True(t, ok)
	assert.Len(t, items, fin.DefaultNewsLimit)

	// Explicit zero limit is honored, not replaced by the default.
	out, err = r.Call(context.Background(), specialist.ToolGetMarketNews,
		json.RawMessage(`{"category": "crypto", "limit": 0}`))
	require.NoError(t, err)
	assert.Len(t, out.([]core.NewsItem), 0)
}

func TestFinancialRegistry_Returns(t *testing.T) {
	r := NewFinancialRegistry(fin.New())

	out, err := r.Call(context.Background(), specialist.ToolCalculateReturns,
		json.RawMessage(`{"initial_investment": 10000, "final_value": 15000, "period_years": 3}`))
	require.NoError(t, err)

	analysis, ok := out.(core.FinancialAnalysis)
	require.True(t, ok)
	assert.Equal(t, 14.47, analysis.Value)
}

func TestFinancialRegistry_Currency(t *testing.T) {
	r := NewFinancialRegistry(fin.New())

	out, err := r.Call(context.Background(), specialist.ToolCurrencyConverter,
		json.RawMessage(`{"amount": 100, "from_currency": "USD", "to_currency": "EUR"}`))
	require.NoError(t, err)
	assert.Equal(t, 92.00, out.(core.FinancialAnalysis).Value)
}

func TestFinancialRegistry_Portfolio(t *testing.T) {
	r := NewFinancialRegistry(fin.New())

	out, err := r.Call(context.Background(), specialist.ToolAnalyzePortfolio,
		json.RawMessage(`{"holdings": [{"symbol": "AAPL", "shares": 10, "average_cost": 150}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, out.(core.PortfolioSummary).NumPositions)

	_, err = r.Call(context.Background(), specialist.ToolAnalyzePortfolio,
		json.RawMessage(`{"holdings": [{"symbol": "AAPL", "shares": 0}]}`))
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestFinancialRegistry_MalformedArgs(t *testing.T) {
	r := NewFinancialRegistry(fin.New())

	_, err := r.Call(context.Background(), specialist.ToolCalculateReturns,
		json.RawMessage(`{"initial_investment": "lots"}`))
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}
