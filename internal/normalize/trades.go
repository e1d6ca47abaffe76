package normalize

import (
	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/model"
)

// RecentTrades stamps each raw trade with the requested symbol and passes
// its fields through. An empty payload is valid: zero trades happened.
func RecentTrades(symbol string, raw []api.Trade) ([]model.RecentTrade, error) {
	rows := make([]model.RecentTrade, 0, len(raw))
	for _, t := range raw {
		price, err := parseDecimal(model.EndpointRecentTrades, "price", t.Price)
		if err != nil {
			return nil, err
		}
		qty, err := parseDecimal(model.EndpointRecentTrades, "qty", t.Qty)
		if err != nil {
			return nil, err
		}
		quoteQty, err := parseDecimal(model.EndpointRecentTrades, "quoteQty", t.QuoteQty)
		if err != nil {
			return nil, err
		}
		if t.Time <= 0 {
			return nil, missingField(model.EndpointRecentTrades, "time")
		}

		rows = append(rows, model.RecentTrade{
			Symbol:       symbol,
			TradeID:      t.ID,
			Price:        price,
			Qty:          qty,
			QuoteQty:     quoteQty,
			TradeTime:    t.Time,
			IsBuyerMaker: t.IsBuyerMaker,
			IsBestMatch:  t.IsBestMatch,
		})
	}
	return rows, nil
}
