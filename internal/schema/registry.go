package schema

import "github.com/ghost-mann/binance-ingest/internal/model"

// Shape tags the top-level JSON shape an endpoint returns.
type Shape string

const (
	// ShapeObjectArray is an array of flat objects (recent trades).
	ShapeObjectArray Shape = "object_array"
	// ShapeObject is a single flat object (latest price, 24h ticker).
	ShapeObject Shape = "object"
	// ShapeDepth is an object holding ordered [price, quantity] level lists.
	ShapeDepth Shape = "depth"
	// ShapePositionalArray is an array of fixed-length positional arrays (klines).
	ShapePositionalArray Shape = "positional_array"
)

// KlineRawColumns is the arity of one raw kline row per the upstream
// contract: open time, OHLCV, close time, quote volume, trade count, taker
// buy base/quote volume, and one unused trailing field.
const KlineRawColumns = 12

// Query parameter names accepted by the polled endpoints, beyond symbol.
const (
	ParamLimit    = "limit"
	ParamInterval = "interval"
)

// Spec describes one endpoint end to end: request template, raw shape, and
// target table identity with its conflict key.
type Spec struct {
	Endpoint model.Endpoint
	Path     string   // REST path under the API base URL
	Params   []string // optional query params (symbol is always sent)
	Shape    Shape

	Table       string   // target table name
	Columns     []string // insert column order
	ConflictKey []string // nil = append-only, no uniqueness constraint
}

// AppendOnly reports whether the endpoint's table has no conflict key.
func (s Spec) AppendOnly() bool {
	return len(s.ConflictKey) == 0
}

var specs = map[model.Endpoint]Spec{
	model.EndpointRecentTrades: {
		Endpoint: model.EndpointRecentTrades,
		Path:     "/api/v3/trades",
		Params:   []string{ParamLimit},
		Shape:    ShapeObjectArray,
		Table:    "recent_trades",
		Columns: []string{
			"symbol", "trade_id", "price", "qty", "quote_qty",
			"trade_time", "is_buyer_maker", "is_best_match",
		},
	},
	model.EndpointLatestPrice: {
		Endpoint: model.EndpointLatestPrice,
		Path:     "/api/v3/ticker/price",
		Shape:    ShapeObject,
		Table:    "latest_prices",
		Columns:  []string{"symbol", "price"},
	},
	model.EndpointOrderBook: {
		Endpoint: model.EndpointOrderBook,
		Path:     "/api/v3/depth",
		Params:   []string{ParamLimit},
		Shape:    ShapeDepth,
		Table:    "order_book",
		Columns: []string{
			"symbol", "last_update_id", "side", "price", "quantity",
		},
	},
	model.EndpointTickerStats: {
		Endpoint: model.EndpointTickerStats,
		Path:     "/api/v3/ticker/24hr",
		Shape:    ShapeObject,
		Table:    "ticker_stats",
		Columns: []string{
			"symbol", "price_change", "price_change_percent", "weighted_avg_price",
			"prev_close_price", "last_price", "last_qty", "bid_price", "bid_qty",
			"ask_price", "ask_qty", "open_price", "high_price", "low_price",
			"volume", "quote_volume", "open_time", "close_time",
			"first_trade_id", "last_trade_id", "trade_count", "updated_at",
		},
		ConflictKey: []string{"symbol"},
	},
	model.EndpointKlines: {
		Endpoint: model.EndpointKlines,
		Path:     "/api/v3/klines",
		Params:   []string{ParamInterval, ParamLimit},
		Shape:    ShapePositionalArray,
		Table:    "klines",
		Columns: []string{
			"symbol", "open_time", "open", "high", "low", "close", "volume",
			"close_time", "quote_asset_volume", "trade_count",
			"taker_buy_base_volume", "taker_buy_quote_volume", "ingested_at",
		},
		ConflictKey: []string{"symbol", "open_time"},
	},
}

// For returns the spec for an endpoint. The second return is false for an
// unknown endpoint.
func For(e model.Endpoint) (Spec, bool) {
	s, ok := specs[e]
	return s, ok
}

// MustFor is For for endpoints known at compile time.
func MustFor(e model.Endpoint) Spec {
	s, ok := specs[e]
	if !ok {
		panic("schema: unknown endpoint " + string(e))
	}
	return s
}

// All returns the specs for every polled endpoint in fetch order.
func All() []Spec {
	out := make([]Spec, 0, len(model.Endpoints))
	for _, e := range model.Endpoints {
		out = append(out, specs[e])
	}
	return out
}
