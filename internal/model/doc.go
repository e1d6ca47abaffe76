// Package model defines shared data types used across the ingestor.
//
// One struct per persisted entity, produced by a normalizer and consumed
// whole by the writer.
//
// Conventions:
//   - Prices and quantities: decimal.Decimal, parsed from the exchange's
//     string representation
//   - Exchange timestamps: int64 milliseconds since Unix epoch, converted
//     to absolute time only at the write boundary
package model
