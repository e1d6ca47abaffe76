package normalize

import (
	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/model"
)

// LatestPrice emits exactly one row from a ticker/price payload. The echoed
// symbol must match the requested one: on some error paths the API answers
// for a different symbol than asked.
func LatestPrice(symbol string, raw api.TickerPrice) (model.LatestPrice, error) {
	if raw.Symbol == "" {
		return model.LatestPrice{}, missingField(model.EndpointLatestPrice, "symbol")
	}
	if raw.Symbol != symbol {
		return model.LatestPrice{}, &Error{
			Endpoint: model.EndpointLatestPrice,
			Reason:   SymbolMismatch,
			Field:    "symbol",
			Detail:   "got " + raw.Symbol + ", requested " + symbol,
		}
	}

	price, err := parseDecimal(model.EndpointLatestPrice, "price", raw.Price)
	if err != nil {
		return model.LatestPrice{}, err
	}

	return model.LatestPrice{Symbol: symbol, Price: price}, nil
}
