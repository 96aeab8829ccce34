// Package specialist defines the static dispatch table binding each routing
// target to a persona and the subset of tools it may invoke.
package specialist

import (
	"github.com/oakmund/finsight/internal/core"
)

// Specialist is a named persona bound to a restricted tool set. The persona
// text is consumed by the LLM layer only; nothing here is computed from it.
type Specialist struct {
	Route        core.Route
	Name         string
	Description  string
	SystemPrompt string
	Tools        []string
}

// AllowsTool reports whether the specialist may invoke the named tool.
func (s Specialist) AllowsTool(name string) bool {
	for _, t := range s.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// Table is an immutable route → specialist mapping, fixed at startup.
type Table struct {
	byRoute map[core.Route]Specialist
}

// For returns the specialist for a route, falling back to the generic
// assistant for unknown routes.
func (t *Table) For(route core.Route) Specialist {
	if sp, ok := t.byRoute[route]; ok {
		return sp
	}
	return t.byRoute[core.RouteDefault]
}

// All returns every specialist in the table.
func (t *Table) All() []Specialist {
	out := make([]Specialist, 0, len(t.byRoute))
	for _, sp := range t.byRoute {
		out = append(out, sp)
	}
	return out
}

// Tool names shared with the tools registry.
const (
	ToolGetStockPrice     = "get_stock_price"
	ToolGetMarketNews     = "get_market_news"
	ToolAnalyzePortfolio  = "analyze_portfolio"
	ToolCalculateReturns  = "calculate_returns"
	ToolCurrencyConverter = "currency_converter"
	ToolRiskAssessment    = "risk_assessment"
)

// AllTools lists every tool name the generic assistant may use.
func AllTools() []string {
	return []string{
		ToolGetStockPrice,
		ToolGetMarketNews,
		ToolAnalyzePortfolio,
		ToolCalculateReturns,
		ToolCurrencyConverter,
		ToolRiskAssessment,
	}
}

// DefaultTable builds the built-in specialist table.
func DefaultTable() *Table {
	specialists := []Specialist{
		{
			Route:       core.RouteStock,
			Name:        "Stock Analyst",
			Description: "Specialist for stock analysis and equity research",
			SystemPrompt: "You are a professional stock analyst. Provide detailed analysis of " +
				"individual stocks, including price trends, fundamental metrics, and investment " +
				"recommendations. Always use the get_stock_price tool for current data and provide " +
				"thoughtful analysis. Always show calculations clearly. If the user refers to a " +
				"previous result or wants it in another currency, acknowledge the amount and point " +
				"them to the currency specialist.",
			Tools: []string{ToolGetStockPrice},
		},
		{
			Route:       core.RoutePortfolio,
			Name:        "Portfolio Manager",
			Description: "Specialist for portfolio analysis and management",
			SystemPrompt: "You are a skilled portfolio manager. Analyze investment portfolios, " +
				"calculate returns, assess risk, and provide optimization recommendations. Use the " +
				"analyze_portfolio, calculate_returns and risk_assessment tools for comprehensive analysis.",
			Tools: []string{ToolAnalyzePortfolio, ToolCalculateReturns, ToolRiskAssessment},
		},
		{
			Route:       core.RouteNews,
			Name:        "Market Intelligence Analyst",
			Description: "Specialist for market news and trends",
			SystemPrompt: "You are a market intelligence expert. Provide the latest market news, " +
				"trends, and insights. Use the get_market_news tool to fetch current information and " +
				"provide context-rich analysis.",
			Tools: []string{ToolGetMarketNews},
		},
		{
			Route:       core.RouteCurrency,
			Name:        "Currency Specialist",
			Description: "Expert for currency conversion and international markets",
			SystemPrompt: "You are a currency and international markets specialist. Handle currency " +
				"conversions, analyze international market trends, and provide global investment " +
				"insights. Use the currency_converter tool for accurate conversions. When the user " +
				"gives just an amount and a currency (e.g. '1000 dollars', 'convert to pkr'), infer " +
				"the intent from context and perform the conversion. Always show the calculation clearly.",
			Tools: []string{ToolCurrencyConverter},
		},
		{
			Route:       core.RouteDefault,
			Name:        "Finance Assistant",
			Description: "General financial assistant",
			SystemPrompt: "You are a helpful financial assistant. Answer general financial questions " +
				"and use the available tools when the user asks for prices, portfolio analysis, news, " +
				"conversions or risk assessment. Only invoke a tool when you have the parameters it needs.",
			Tools: AllTools(),
		},
	}

	byRoute := make(map[core.Route]Specialist, len(specialists))
	for _, sp := range specialists {
		byRoute[sp.Route] = sp
	}
	return &Table{byRoute: byRoute}
}
