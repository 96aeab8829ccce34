// Package classify maps a raw user query to a routing target using ordered
// keyword-set membership. This stands in for true intent classification: it
// mirrors what a triage prompt would do, but deterministically.
package classify

import (
	"strings"

	"github.com/oakmund/finsight/internal/core"
)

// Rule pairs a keyword set with the route it selects. Matching is substring
// containment on the lower-cased query.
type Rule struct {
	Target   core.Route
	Keywords []string
}

// DefaultRules returns the built-in rule list. Order is load-bearing: rules
// are evaluated top to bottom and the first match wins, so a query containing
// both "stock" and "news" routes to stock. Math terms route to the currency
// specialist, which owns calculations involving money. Note "subtract",
// "add" and "multiply" appear in both the math and currency sets; the math
// rule always wins because it is checked first.
func DefaultRules() []Rule {
	return []Rule{
		{
			Target:   core.RouteCurrency,
			Keywords: []string{"subtract", "add", "multiply", "divide", "percent", "%", "calculate"},
		},
		{
			Target: core.RouteStock,
			Keywords: []string{"stock", "price", "aapl", "googl", "tsla", "nvda", "msft", "amzn",
				"meta", "ticker", "shares", "equity", "analysis"},
		},
		{
			Target: core.RoutePortfolio,
			Keywords: []string{"portfolio", "investment", "returns", "risk", "diversification",
				"holdings", "asset", "allocation"},
		},
		{
			Target:   core.RouteNews,
			Keywords: []string{"news", "market", "trends", "sector", "update", "latest", "breaking"},
		},
		{
			Target: core.RouteCurrency,
			Keywords: []string{"currency", "forex", "convert", "exchange rate", "eur", "gbp", "jpy",
				"usd", "international", "pkr", "rupees", "pakistan", "inr", "cny",
				"cad", "aud", "chf", "aed", "sar", "subtract", "add", "multiply"},
		},
	}
}

// Classifier routes queries against an ordered rule list.
type Classifier struct {
	rules []Rule
}

// New creates a classifier. With no rules it uses DefaultRules.
func New(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Route returns the first matching rule's target, or RouteDefault when no
// rule matches (including the empty query).
func (c *Classifier) Route(query string) core.Route {
	lower := strings.ToLower(query)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Target
			}
		}
	}
	return core.RouteDefault
}

// Rules returns a copy of the classifier's rule list.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
