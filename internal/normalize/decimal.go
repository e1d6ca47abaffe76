package normalize

import (
	"github.com/shopspring/decimal"

	"github.com/ghost-mann/binance-ingest/internal/model"
)

// parseDecimal parses a required numeric string field. An empty string is
// treated as an absent field.
func parseDecimal(e model.Endpoint, field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, missingField(e, field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, invalidValue(e, field, err.Error())
	}
	return d, nil
}
