package normalize

import (
	"errors"
	"fmt"

	"github.com/ghost-mann/binance-ingest/internal/model"
)

// Reason classifies a normalization failure.
type Reason string

const (
	// MissingField: an expected top-level field is absent from the payload.
	MissingField Reason = "missing_field"
	// InvalidValue: a field is present but does not parse as its expected type.
	InvalidValue Reason = "invalid_value"
	// SymbolMismatch: the payload echoes a symbol other than the requested one.
	SymbolMismatch Reason = "symbol_mismatch"
	// ColumnCountMismatch: a positional row's arity does not match the contract.
	ColumnCountMismatch Reason = "column_count_mismatch"
	// EmptyPayloadRequired: the endpoint requires a non-empty payload and got
	// none. No polled endpoint currently raises this; empty results are valid
	// everywhere.
	EmptyPayloadRequired Reason = "empty_payload_required"
)

// Error is a normalization failure tied to one endpoint's contract.
type Error struct {
	Endpoint model.Endpoint
	Reason   Reason
	Field    string // offending field or column, when known
	Detail   string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("normalize %s: %s", e.Endpoint, e.Reason)
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// IsReason reports whether err is a normalization Error with the given reason.
func IsReason(err error, r Reason) bool {
	var nerr *Error
	return errors.As(err, &nerr) && nerr.Reason == r
}

func missingField(e model.Endpoint, field string) *Error {
	return &Error{Endpoint: e, Reason: MissingField, Field: field}
}

func invalidValue(e model.Endpoint, field, detail string) *Error {
	return &Error{Endpoint: e, Reason: InvalidValue, Field: field, Detail: detail}
}
