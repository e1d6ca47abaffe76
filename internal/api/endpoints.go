package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ghost-mann/binance-ingest/internal/model"
	"github.com/ghost-mann/binance-ingest/internal/schema"
)

// RecentTrades fetches the most recent trades for a symbol.
// A limit of 0 leaves the server default in effect.
func (c *Client) RecentTrades(ctx context.Context, symbol string, limit int) ([]Trade, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if limit > 0 {
		query.Set(schema.ParamLimit, strconv.Itoa(limit))
	}

	var resp []Trade
	if err := c.get(ctx, schema.MustFor(model.EndpointRecentTrades).Path, query, &resp); err != nil {
		return nil, fmt.Errorf("get recent trades: %w", err)
	}
	return resp, nil
}

// TickerPrice fetches the latest price for a symbol.
func (c *Client) TickerPrice(ctx context.Context, symbol string) (TickerPrice, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var resp TickerPrice
	if err := c.get(ctx, schema.MustFor(model.EndpointLatestPrice).Path, query, &resp); err != nil {
		return TickerPrice{}, fmt.Errorf("get ticker price: %w", err)
	}
	return resp, nil
}

// OrderBook fetches a depth snapshot for a symbol.
func (c *Client) OrderBook(ctx context.Context, symbol string, limit int) (Depth, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if limit > 0 {
		query.Set(schema.ParamLimit, strconv.Itoa(limit))
	}

	var resp Depth
	if err := c.get(ctx, schema.MustFor(model.EndpointOrderBook).Path, query, &resp); err != nil {
		return Depth{}, fmt.Errorf("get order book: %w", err)
	}
	return resp, nil
}

// Ticker24h fetches the 24h rolling-window statistics for a symbol.
func (c *Client) Ticker24h(ctx context.Context, symbol string) (Ticker24h, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var resp Ticker24h
	if err := c.get(ctx, schema.MustFor(model.EndpointTickerStats).Path, query, &resp); err != nil {
		return Ticker24h{}, fmt.Errorf("get 24h ticker: %w", err)
	}
	return resp, nil
}

// Klines fetches candlestick bars for a symbol at the given interval
// (e.g., "1m", "1h"). A limit of 0 leaves the server default in effect.
func (c *Client) Klines(ctx context.Context, symbol, interval string, limit int) ([]KlineRow, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set(schema.ParamInterval, interval)
	if limit > 0 {
		query.Set(schema.ParamLimit, strconv.Itoa(limit))
	}

	var resp []KlineRow
	if err := c.get(ctx, schema.MustFor(model.EndpointKlines).Path, query, &resp); err != nil {
		return nil, fmt.Errorf("get klines: %w", err)
	}
	return resp, nil
}
