package normalize

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/model"
	"github.com/ghost-mann/binance-ingest/internal/schema"
)

// Raw kline cell positions per the upstream contract. The trailing
// "ignore" cell (index 11) is dropped.
const (
	klineOpenTime = iota
	klineOpen
	klineHigh
	klineLow
	klineClose
	klineVolume
	klineCloseTime
	klineQuoteVolume
	klineTradeCount
	klineTakerBuyBase
	klineTakerBuyQuote
)

// Klines maps positional kline rows to named columns, stamping each with
// the requested symbol. A row whose arity differs from the contract fails
// the whole payload: arity drift means the upstream contract changed.
func Klines(symbol string, raw []api.KlineRow) ([]model.Kline, error) {
	rows := make([]model.Kline, 0, len(raw))
	for i, r := range raw {
		if len(r) != schema.KlineRawColumns {
			return nil, &Error{
				Endpoint: model.EndpointKlines,
				Reason:   ColumnCountMismatch,
				Detail:   "row " + strconv.Itoa(i) + " has " + strconv.Itoa(len(r)) + " columns, want " + strconv.Itoa(schema.KlineRawColumns),
			}
		}

		row := model.Kline{Symbol: symbol}
		var err error

		if row.OpenTime, err = klineInt(r, klineOpenTime, "open_time"); err != nil {
			return nil, err
		}
		if row.Open, err = klineDecimal(r, klineOpen, "open"); err != nil {
			return nil, err
		}
		if row.High, err = klineDecimal(r, klineHigh, "high"); err != nil {
			return nil, err
		}
		if row.Low, err = klineDecimal(r, klineLow, "low"); err != nil {
			return nil, err
		}
		if row.Close, err = klineDecimal(r, klineClose, "close"); err != nil {
			return nil, err
		}
		if row.Volume, err = klineDecimal(r, klineVolume, "volume"); err != nil {
			return nil, err
		}
		if row.CloseTime, err = klineInt(r, klineCloseTime, "close_time"); err != nil {
			return nil, err
		}
		if row.QuoteAssetVolume, err = klineDecimal(r, klineQuoteVolume, "quote_asset_volume"); err != nil {
			return nil, err
		}
		if row.TradeCount, err = klineInt(r, klineTradeCount, "trade_count"); err != nil {
			return nil, err
		}
		if row.TakerBuyBaseVolume, err = klineDecimal(r, klineTakerBuyBase, "taker_buy_base_volume"); err != nil {
			return nil, err
		}
		if row.TakerBuyQuoteVolume, err = klineDecimal(r, klineTakerBuyQuote, "taker_buy_quote_volume"); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}
	return rows, nil
}

func klineInt(row api.KlineRow, idx int, name string) (int64, error) {
	var v int64
	if err := json.Unmarshal(row[idx], &v); err != nil {
		return 0, invalidValue(model.EndpointKlines, name, err.Error())
	}
	return v, nil
}

func klineDecimal(row api.KlineRow, idx int, name string) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(row[idx], &s); err != nil {
		return decimal.Decimal{}, invalidValue(model.EndpointKlines, name, err.Error())
	}
	return parseDecimal(model.EndpointKlines, name, s)
}
