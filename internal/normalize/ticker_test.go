package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghost-mann/binance-ingest/internal/api"
)

func validTicker24h() api.Ticker24h {
	return api.Ticker24h{
		Symbol:             "ETHUSDT",
		PriceChange:        "1.5",
		PriceChangePercent: "0.05",
		WeightedAvgPrice:   "3001.2",
		PrevClosePrice:     "3000.0",
		LastPrice:          "3001.5",
		LastQty:            "0.25",
		BidPrice:           "3001.4",
		BidQty:             "1.1",
		AskPrice:           "3001.6",
		AskQty:             "0.9",
		OpenPrice:          "3000.0",
		HighPrice:          "3010.0",
		LowPrice:           "2990.0",
		Volume:             "12345.6",
		QuoteVolume:        "37000000.0",
		OpenTime:           1700000000000,
		CloseTime:          1700003600000,
		FirstID:            100,
		LastID:             250,
		Count:              151,
	}
}

func TestTickerStats(t *testing.T) {
	row, err := TickerStats("ETHUSDT", validTicker24h())
	require.NoError(t, err)

	assert.Equal(t, "ETHUSDT", row.Symbol)
	assert.Equal(t, "1.5", row.PriceChange.String())
	assert.Equal(t, "3001.5", row.LastPrice.String())
	assert.Equal(t, int64(151), row.TradeCount)

	// Window timestamps pass through as raw milliseconds; the writer owns
	// the epoch conversion.
	assert.Equal(t, int64(1700000000000), row.OpenTime)
	assert.Equal(t, int64(1700003600000), row.CloseTime)
}

func TestTickerStatsSymbolMismatch(t *testing.T) {
	raw := validTicker24h()
	raw.Symbol = "BTCUSDT"

	_, err := TickerStats("ETHUSDT", raw)
	require.Error(t, err)
	assert.True(t, IsReason(err, SymbolMismatch), "err = %v", err)
}

func TestTickerStatsMissingFields(t *testing.T) {
	t.Run("missing openTime", func(t *testing.T) {
		raw := validTicker24h()
		raw.OpenTime = 0
		_, err := TickerStats("ETHUSDT", raw)
		assert.True(t, IsReason(err, MissingField), "err = %v", err)
	})

	t.Run("missing numeric field", func(t *testing.T) {
		raw := validTicker24h()
		raw.HighPrice = ""
		_, err := TickerStats("ETHUSDT", raw)
		require.Error(t, err)
		assert.True(t, IsReason(err, MissingField), "err = %v", err)

		var nerr *Error
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, "highPrice", nerr.Field)
	})
}
