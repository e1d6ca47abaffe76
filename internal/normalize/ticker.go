package normalize

import (
	"github.com/shopspring/decimal"

	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/model"
)

// TickerStats emits exactly one row from a 24h ticker payload. The window
// timestamps stay raw epoch milliseconds; converting them is the writer's
// concern, which keeps this function free of epoch handling.
func TickerStats(symbol string, raw api.Ticker24h) (model.TickerStats, error) {
	var zero model.TickerStats

	if raw.Symbol == "" {
		return zero, missingField(model.EndpointTickerStats, "symbol")
	}
	if raw.Symbol != symbol {
		return zero, &Error{
			Endpoint: model.EndpointTickerStats,
			Reason:   SymbolMismatch,
			Field:    "symbol",
			Detail:   "got " + raw.Symbol + ", requested " + symbol,
		}
	}
	if raw.OpenTime <= 0 {
		return zero, missingField(model.EndpointTickerStats, "openTime")
	}
	if raw.CloseTime <= 0 {
		return zero, missingField(model.EndpointTickerStats, "closeTime")
	}

	row := model.TickerStats{
		Symbol:       symbol,
		OpenTime:     raw.OpenTime,
		CloseTime:    raw.CloseTime,
		FirstTradeID: raw.FirstID,
		LastTradeID:  raw.LastID,
		TradeCount:   raw.Count,
	}

	fields := []struct {
		name string
		src  string
		dst  *decimal.Decimal
	}{
		{"priceChange", raw.PriceChange, &row.PriceChange},
		{"priceChangePercent", raw.PriceChangePercent, &row.PriceChangePercent},
		{"weightedAvgPrice", raw.WeightedAvgPrice, &row.WeightedAvgPrice},
		{"prevClosePrice", raw.PrevClosePrice, &row.PrevClosePrice},
		{"lastPrice", raw.LastPrice, &row.LastPrice},
		{"lastQty", raw.LastQty, &row.LastQty},
		{"bidPrice", raw.BidPrice, &row.BidPrice},
		{"bidQty", raw.BidQty, &row.BidQty},
		{"askPrice", raw.AskPrice, &row.AskPrice},
		{"askQty", raw.AskQty, &row.AskQty},
		{"openPrice", raw.OpenPrice, &row.OpenPrice},
		{"highPrice", raw.HighPrice, &row.HighPrice},
		{"lowPrice", raw.LowPrice, &row.LowPrice},
		{"volume", raw.Volume, &row.Volume},
		{"quoteVolume", raw.QuoteVolume, &row.QuoteVolume},
	}
	for _, f := range fields {
		v, err := parseDecimal(model.EndpointTickerStats, f.name, f.src)
		if err != nil {
			return zero, err
		}
		*f.dst = v
	}

	return row, nil
}
