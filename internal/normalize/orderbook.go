package normalize

import (
	"strconv"

	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/model"
)

// OrderBook flattens a depth snapshot into one row per price level, bids
// first, preserving input order within each side. Absent or empty sides are
// valid and contribute zero rows.
func OrderBook(symbol string, raw api.Depth) ([]model.OrderBookLevel, error) {
	if raw.LastUpdateID <= 0 {
		return nil, missingField(model.EndpointOrderBook, "lastUpdateId")
	}

	rows := make([]model.OrderBookLevel, 0, len(raw.Bids)+len(raw.Asks))

	var err error
	rows, err = appendLevels(rows, symbol, raw.LastUpdateID, model.SideBid, raw.Bids)
	if err != nil {
		return nil, err
	}
	rows, err = appendLevels(rows, symbol, raw.LastUpdateID, model.SideAsk, raw.Asks)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func appendLevels(rows []model.OrderBookLevel, symbol string, lastUpdateID int64, side model.Side, levels [][]string) ([]model.OrderBookLevel, error) {
	for i, level := range levels {
		if len(level) != 2 {
			return nil, &Error{
				Endpoint: model.EndpointOrderBook,
				Reason:   ColumnCountMismatch,
				Field:    string(side),
				Detail:   "level " + strconv.Itoa(i) + " has " + strconv.Itoa(len(level)) + " elements, want 2",
			}
		}

		price, err := parseDecimal(model.EndpointOrderBook, "price", level[0])
		if err != nil {
			return nil, err
		}
		qty, err := parseDecimal(model.EndpointOrderBook, "quantity", level[1])
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.OrderBookLevel{
			Symbol:       symbol,
			LastUpdateID: lastUpdateID,
			Side:         side,
			Price:        price,
			Quantity:     qty,
		})
	}
	return rows, nil
}
