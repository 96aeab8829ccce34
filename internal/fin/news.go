package fin

import (
	"fmt"
	"strings"
	"time"

	"github.com/oakmund/finsight/internal/core"
)

// DefaultNewsLimit is the number of items returned when the caller does not
// specify a count.
const DefaultNewsLimit = 5

// newsCategories maps a category to the topic labels it draws headlines from.
// Unknown categories fall back to a generic label; that is deliberate, not an
// error.
var newsCategories = map[string][]string{
	"stocks":  {"Stock Market", "Equities", "Wall Street"},
	"crypto":  {"Cryptocurrency", "Bitcoin", "DeFi"},
	"economy": {"Economy", "Inflation", "Federal Reserve"},
	"tech":    {"Technology", "AI", "Semiconductors"},
}

var genericTopics = []string{"Market"}

var newsSources = []string{"Bloomberg", "Reuters", "CNBC", "Financial Times", "MarketWatch"}

// GetMarketNews returns simulated news items for a category. Timestamps fall
// within the last 24 hours. limit must be >= 0; limit 0 yields an empty slice.
func (s *Service) GetMarketNews(category string, limit int) ([]core.NewsItem, error) {
	if limit < 0 {
		return nil, core.WrapError(core.ErrInvalidArgument, fmt.Errorf("limit must be >= 0, got %d", limit))
	}
	if category == "" {
		category = "stocks"
	}

	topics, ok := newsCategories[strings.ToLower(category)]
	if !ok {
		topics = genericTopics
	}

	items := make([]core.NewsItem, 0, limit)
	for i := 0; i < limit; i++ {
		topic := topics[s.rnd.Intn(len(topics))]
		source := newsSources[s.rnd.Intn(len(newsSources))]
		age := time.Duration(s.rnd.Intn(25)) * time.Hour

		items = append(items, core.NewsItem{
			Headline:  fmt.Sprintf("%s Update: Market analysis and insights %d", topic, i+1),
			Source:    source,
			Timestamp: s.now().Add(-age),
			Summary: fmt.Sprintf("Analysis of %s trends and market movements. Expert opinions on future direction.",
				strings.ToLower(topic)),
		})
	}

	return items, nil
}
