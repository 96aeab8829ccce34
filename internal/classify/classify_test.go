package classify

import (
	"testing"

	"github.com/oakmund/finsight/internal/core"
)

func TestClassifier_Route(t *testing.T) {
	c := New()

	tests := []struct {
		query string
		want  core.Route
	}{
		{"What's the current price of AAPL?", core.RouteStock},
		{"Analyze my portfolio with 50 shares of MSFT", core.RouteStock}, // "shares" is a stock keyword
		{"How are my holdings doing?", core.RoutePortfolio},
		{"What's the latest market news?", core.RouteNews},
		{"Convert 100 USD to EUR", core.RouteCurrency},
		{"how much is 500 rupees", core.RouteCurrency},
		{"hello there", core.RouteDefault},
		{"", core.RouteDefault},
	}

	for _, tt := range tests {
		if got := c.Route(tt.query); got != tt.want {
			t.Errorf("Route(%q) = %s, want %s", tt.query, got, tt.want)
		}
	}
}

func TestClassifier_PriorityOrder(t *testing.T) {
	c := New()

	// Stock keywords outrank news keywords: "stock market news" hits both
	// sets but must route to stock.
	if got := c.Route("stock market news"); got != core.RouteStock {
		t.Errorf("stock keywords should win over news, got %s", got)
	}

	// Math keywords outrank everything: "subtract" routes to currency even
	// when "portfolio" is present.
	if got := c.Route("subtract 500 from my portfolio value"); got != core.RouteCurrency {
		t.Errorf("math keywords should win over portfolio, got %s", got)
	}

	if got := c.Route("calculate my returns"); got != core.RouteCurrency {
		t.Errorf("math keywords should win over portfolio returns, got %s", got)
	}
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	c := New()
	if got := c.Route("PRICE OF TSLA"); got != core.RouteStock {
		t.Errorf("matching should be case-insensitive, got %s", got)
	}
}

func TestClassifier_SubstringContainment(t *testing.T) {
	c := New()
	// Keywords match as substrings, not whole words.
	if got := c.Route("addendum"); got != core.RouteCurrency {
		t.Errorf("substring matching should route 'addendum' via 'add', got %s", got)
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	c := New(Rule{Target: core.RouteNews, Keywords: []string{"weather"}})
	if got := c.Route("what's the weather"); got != core.RouteNews {
		t.Errorf("custom rule should apply, got %s", got)
	}
	if got := c.Route("price of AAPL"); got != core.RouteDefault {
		t.Errorf("custom rules replace the defaults, got %s", got)
	}
}

func TestDefaultRules_Order(t *testing.T) {
	rules := DefaultRules()
	if len(rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(rules))
	}
	want := []core.Route{core.RouteCurrency, core.RouteStock, core.RoutePortfolio, core.RouteNews, core.RouteCurrency}
	for i, r := range rules {
		if r.Target != want[i] {
			t.Errorf("rule %d targets %s, want %s", i, r.Target, want[i])
		}
	}
}
