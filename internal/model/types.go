package model

import "github.com/shopspring/decimal"

// Endpoint identifies one of the polled REST endpoints.
type Endpoint string

const (
	EndpointRecentTrades Endpoint = "recent_trades"
	EndpointLatestPrice  Endpoint = "latest_price"
	EndpointOrderBook    Endpoint = "order_book"
	EndpointTickerStats  Endpoint = "ticker_stats"
	EndpointKlines       Endpoint = "klines"
)

// Endpoints lists all polled endpoints in fetch order.
var Endpoints = []Endpoint{
	EndpointRecentTrades,
	EndpointLatestPrice,
	EndpointOrderBook,
	EndpointTickerStats,
	EndpointKlines,
}

// Side tags an order-book level as bid or ask.
type Side string

const (
	SideBid Side = "bid"
	SideAsk Side = "ask"
)

// -----------------------------------------------------------------------------
// Row Types
// -----------------------------------------------------------------------------

// RecentTrade is one executed trade from the recent-trades endpoint.
// Append-only; duplicate ingestion creates duplicate rows.
type RecentTrade struct {
	Symbol       string          // Trading pair (e.g., "BTCUSDT")
	TradeID      int64           // Exchange trade ID
	Price        decimal.Decimal // Trade price
	Qty          decimal.Decimal // Base asset quantity
	QuoteQty     decimal.Decimal // Quote asset quantity
	TradeTime    int64           // Exchange trade time (ms since epoch)
	IsBuyerMaker bool            // true if the buyer was the maker
	IsBestMatch  bool            // true if the trade was the best price match
}

// LatestPrice is one point-in-time best-price snapshot. Append-only log.
type LatestPrice struct {
	Symbol string          // Trading pair
	Price  decimal.Decimal // Last traded price
}

// OrderBookLevel is one price level of a depth snapshot. Append-only;
// one row per level per poll.
type OrderBookLevel struct {
	Symbol       string          // Trading pair
	LastUpdateID int64           // Exchange book version at snapshot time
	Side         Side            // bid or ask
	Price        decimal.Decimal // Level price
	Quantity     decimal.Decimal // Quantity resting at this level
}

// TickerStats is the 24h rolling-window statistics for a symbol.
// Keyed on symbol; each poll overwrites the previous row.
//
// OpenTime and CloseTime stay raw epoch milliseconds here: conversion to
// absolute time is a storage concern owned by the writer.
type TickerStats struct {
	Symbol             string
	PriceChange        decimal.Decimal
	PriceChangePercent decimal.Decimal
	WeightedAvgPrice   decimal.Decimal
	PrevClosePrice     decimal.Decimal
	LastPrice          decimal.Decimal
	LastQty            decimal.Decimal
	BidPrice           decimal.Decimal
	BidQty             decimal.Decimal
	AskPrice           decimal.Decimal
	AskQty             decimal.Decimal
	OpenPrice          decimal.Decimal
	HighPrice          decimal.Decimal
	LowPrice           decimal.Decimal
	Volume             decimal.Decimal
	QuoteVolume        decimal.Decimal
	OpenTime           int64 // Window open (ms since epoch)
	CloseTime          int64 // Window close (ms since epoch)
	FirstTradeID       int64
	LastTradeID        int64
	TradeCount         int64
}

// Kline is one candlestick bar. Keyed on (symbol, open_time); re-polling
// the same bar updates it in place.
type Kline struct {
	Symbol              string
	OpenTime            int64 // Bar open (ms since epoch)
	Open                decimal.Decimal
	High                decimal.Decimal
	Low                 decimal.Decimal
	Close               decimal.Decimal
	Volume              decimal.Decimal
	CloseTime           int64 // Bar close (ms since epoch)
	QuoteAssetVolume    decimal.Decimal
	TradeCount          int64
	TakerBuyBaseVolume  decimal.Decimal
	TakerBuyQuoteVolume decimal.Decimal
}
