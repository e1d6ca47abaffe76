package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghost-mann/binance-ingest/internal/api"
)

func TestLatestPrice(t *testing.T) {
	row, err := LatestPrice("BTCUSDT", api.TickerPrice{Symbol: "BTCUSDT", Price: "65000.00"})
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", row.Symbol)
	assert.Equal(t, "65000", row.Price.String())
}

func TestLatestPriceSymbolMismatch(t *testing.T) {
	// The API echoed a different symbol than requested.
	_, err := LatestPrice("ETHUSDT", api.TickerPrice{Symbol: "BTCUSDT", Price: "65000.00"})
	require.Error(t, err)
	assert.True(t, IsReason(err, SymbolMismatch), "err = %v", err)
}

func TestLatestPriceMissingFields(t *testing.T) {
	_, err := LatestPrice("BTCUSDT", api.TickerPrice{Price: "65000.00"})
	assert.True(t, IsReason(err, MissingField), "err = %v", err)

	_, err = LatestPrice("BTCUSDT", api.TickerPrice{Symbol: "BTCUSDT"})
	assert.True(t, IsReason(err, MissingField), "err = %v", err)
}
