package writer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ghost-mann/binance-ingest/internal/model"
	"github.com/ghost-mann/binance-ingest/internal/schema"
)

func TestUpsertSQL_AppendOnly(t *testing.T) {
	sql := upsertSQL(schema.MustFor(model.EndpointRecentTrades))

	want := "INSERT INTO recent_trades (symbol, trade_id, price, qty, quote_qty, trade_time, is_buyer_maker, is_best_match) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if strings.Contains(sql, "ON CONFLICT") {
		t.Error("append-only statement must not carry a conflict clause")
	}
}

func TestUpsertSQL_SymbolKey(t *testing.T) {
	sql := upsertSQL(schema.MustFor(model.EndpointTickerStats))

	if !strings.Contains(sql, "ON CONFLICT (symbol) DO UPDATE SET") {
		t.Errorf("missing symbol conflict clause: %q", sql)
	}
	// Every non-key column is overwritten; the key column is not.
	if strings.Contains(sql, "symbol = EXCLUDED.symbol") {
		t.Errorf("conflict key must not be overwritten: %q", sql)
	}
	if !strings.Contains(sql, "last_price = EXCLUDED.last_price") {
		t.Errorf("non-key column not overwritten: %q", sql)
	}
	if !strings.Contains(sql, "updated_at = EXCLUDED.updated_at") {
		t.Errorf("updated_at not overwritten: %q", sql)
	}
}

func TestUpsertSQL_CompositeKey(t *testing.T) {
	sql := upsertSQL(schema.MustFor(model.EndpointKlines))

	if !strings.Contains(sql, "ON CONFLICT (symbol, open_time) DO UPDATE SET") {
		t.Errorf("missing composite conflict clause: %q", sql)
	}
	if strings.Contains(sql, "open_time = EXCLUDED.open_time") {
		t.Errorf("conflict key must not be overwritten: %q", sql)
	}
	if !strings.Contains(sql, "close = EXCLUDED.close") {
		t.Errorf("non-key column not overwritten: %q", sql)
	}
}

func TestMsToTime(t *testing.T) {
	// Milliseconds are floored to whole seconds at the write boundary.
	want := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

	if got := msToTime(1700000000000); !got.Equal(want) {
		t.Errorf("msToTime(1700000000000) = %v, want %v", got, want)
	}
	if got := msToTime(1700000000999); !got.Equal(want) {
		t.Errorf("msToTime(1700000000999) = %v, want %v", got, want)
	}
}

func TestArgsMatchRegistryColumns(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		endpoint model.Endpoint
		args     []any
	}{
		{model.EndpointRecentTrades, tradeArgs(model.RecentTrade{})},
		{model.EndpointLatestPrice, priceArgs(model.LatestPrice{})},
		{model.EndpointOrderBook, levelArgs(model.OrderBookLevel{})},
		{model.EndpointTickerStats, tickerArgs(model.TickerStats{}, now)},
		{model.EndpointKlines, klineArgs(model.Kline{}, now)},
	}

	for _, tt := range tests {
		cols := schema.MustFor(tt.endpoint).Columns
		if len(tt.args) != len(cols) {
			t.Errorf("%s: %d args for %d columns", tt.endpoint, len(tt.args), len(cols))
		}
	}
}

func TestTickerArgsConvertsWindowTimes(t *testing.T) {
	updatedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	row := model.TickerStats{
		Symbol:    "ETHUSDT",
		OpenTime:  1700000000000,
		CloseTime: 1700003600000,
	}

	args := tickerArgs(row, updatedAt)

	cols := schema.MustFor(model.EndpointTickerStats).Columns
	idx := func(name string) int {
		for i, c := range cols {
			if c == name {
				return i
			}
		}
		t.Fatalf("column %q not in registry", name)
		return -1
	}

	if got := args[idx("open_time")].(time.Time); !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("open_time = %v, want %v", got, time.Unix(1700000000, 0).UTC())
	}
	if got := args[idx("close_time")].(time.Time); !got.Equal(time.Unix(1700003600, 0)) {
		t.Errorf("close_time = %v, want %v", got, time.Unix(1700003600, 0).UTC())
	}
	if got := args[idx("updated_at")].(time.Time); !got.Equal(updatedAt) {
		t.Errorf("updated_at = %v, want %v", got, updatedAt)
	}
}

func TestEmptyBatchIsNoOp(t *testing.T) {
	// A nil DB would panic on Begin; empty input must return before that.
	w := New(nil, nil)

	if err := w.WriteRecentTrades(context.Background(), nil); err != nil {
		t.Errorf("WriteRecentTrades(nil) error = %v", err)
	}
	if err := w.WriteOrderBook(context.Background(), nil); err != nil {
		t.Errorf("WriteOrderBook(nil) error = %v", err)
	}
	if err := w.WriteKlines(context.Background(), nil); err != nil {
		t.Errorf("WriteKlines(nil) error = %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, ConstraintViolation},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ConstraintViolation},
		{"connection exception", &pgconn.PgError{Code: "08006"}, ConnectionFailure},
		{"deadline", context.DeadlineExceeded, ConnectionFailure},
		{"canceled", context.Canceled, ConnectionFailure},
		{"syntax error", &pgconn.PgError{Code: "42601"}, Other},
		{"plain error", errors.New("boom"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			werr := classify("klines", tt.err)
			if werr.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", werr.Kind, tt.kind)
			}
			if werr.Table != "klines" {
				t.Errorf("Table = %q, want klines", werr.Table)
			}
			if !IsKind(werr, tt.kind) {
				t.Error("IsKind() = false")
			}
			if !errors.Is(werr, tt.err) {
				t.Error("wrapped error lost")
			}
		})
	}
}

func TestLevelArgsSideTag(t *testing.T) {
	args := levelArgs(model.OrderBookLevel{
		Symbol:       "BTCUSDT",
		LastUpdateID: 42,
		Side:         model.SideAsk,
		Price:        decimal.RequireFromString("65001.00"),
		Quantity:     decimal.RequireFromString("0.3"),
	})

	if args[2] != "ask" {
		t.Errorf("side arg = %v, want ask", args[2])
	}
}
