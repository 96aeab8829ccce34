package fin

import (
	"strings"

	"github.com/oakmund/finsight/internal/core"
)

// GetStockPrice returns a simulated quote for a symbol. The price is drawn
// uniformly from [50, 500) and the change from [-10, 10); quotes are never
// cached, so two calls for the same symbol return different values.
func (s *Service) GetStockPrice(symbol string) (core.Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return core.Quote{}, core.ErrInvalidArgument
	}

	price := s.uniform(50, 500)
	change := s.uniform(-10, 10)
	changePercent := change / price * 100

	return core.Quote{
		Symbol:        strings.ToUpper(symbol),
		Price:         round2(price),
		Change:        round2(change),
		ChangePercent: round2(changePercent),
		Timestamp:     s.now(),
	}, nil
}
