package writer

import (
	"context"
	"time"

	"github.com/ghost-mann/binance-ingest/internal/model"
	"github.com/ghost-mann/binance-ingest/internal/schema"
)

// Argument flattening follows the registry column order for each table.

func tradeArgs(t model.RecentTrade) []any {
	return []any{
		t.Symbol, t.TradeID, t.Price, t.Qty, t.QuoteQty,
		msToTime(t.TradeTime), t.IsBuyerMaker, t.IsBestMatch,
	}
}

func priceArgs(p model.LatestPrice) []any {
	return []any{p.Symbol, p.Price}
}

func levelArgs(l model.OrderBookLevel) []any {
	return []any{l.Symbol, l.LastUpdateID, string(l.Side), l.Price, l.Quantity}
}

func tickerArgs(t model.TickerStats, updatedAt time.Time) []any {
	return []any{
		t.Symbol, t.PriceChange, t.PriceChangePercent, t.WeightedAvgPrice,
		t.PrevClosePrice, t.LastPrice, t.LastQty, t.BidPrice, t.BidQty,
		t.AskPrice, t.AskQty, t.OpenPrice, t.HighPrice, t.LowPrice,
		t.Volume, t.QuoteVolume, msToTime(t.OpenTime), msToTime(t.CloseTime),
		t.FirstTradeID, t.LastTradeID, t.TradeCount, updatedAt,
	}
}

func klineArgs(k model.Kline, ingestedAt time.Time) []any {
	return []any{
		k.Symbol, msToTime(k.OpenTime), k.Open, k.High, k.Low, k.Close,
		k.Volume, msToTime(k.CloseTime), k.QuoteAssetVolume, k.TradeCount,
		k.TakerBuyBaseVolume, k.TakerBuyQuoteVolume, ingestedAt,
	}
}

// WriteRecentTrades appends one poll's trades.
func (w *Writer) WriteRecentTrades(ctx context.Context, rows []model.RecentTrade) error {
	args := make([][]any, len(rows))
	for i, r := range rows {
		args[i] = tradeArgs(r)
	}
	return w.writeRows(ctx, schema.MustFor(model.EndpointRecentTrades), args)
}

// WriteLatestPrice appends one point-in-time price row.
func (w *Writer) WriteLatestPrice(ctx context.Context, row model.LatestPrice) error {
	return w.writeRows(ctx, schema.MustFor(model.EndpointLatestPrice), [][]any{priceArgs(row)})
}

// WriteOrderBook appends one poll's depth levels, preserving input order.
func (w *Writer) WriteOrderBook(ctx context.Context, rows []model.OrderBookLevel) error {
	args := make([][]any, len(rows))
	for i, r := range rows {
		args[i] = levelArgs(r)
	}
	return w.writeRows(ctx, schema.MustFor(model.EndpointOrderBook), args)
}

// WriteTickerStats upserts the symbol's 24h statistics row, stamping
// updated_at with the write's own clock.
func (w *Writer) WriteTickerStats(ctx context.Context, row model.TickerStats) error {
	return w.writeRows(ctx, schema.MustFor(model.EndpointTickerStats),
		[][]any{tickerArgs(row, w.now().UTC())})
}

// WriteKlines upserts candlestick bars keyed on (symbol, open_time),
// stamping ingested_at with the write's own clock. Re-polled bars
// overwrite in place.
func (w *Writer) WriteKlines(ctx context.Context, rows []model.Kline) error {
	ingestedAt := w.now().UTC()
	args := make([][]any, len(rows))
	for i, r := range rows {
		args[i] = klineArgs(r, ingestedAt)
	}
	return w.writeRows(ctx, schema.MustFor(model.EndpointKlines), args)
}
