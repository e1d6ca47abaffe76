// Package writer persists normalized rows with endpoint-appropriate
// idempotency.
//
// One call writes one poll's rows for one endpoint as a single transaction:
// either every row lands or none does. Append-only tables get a plain
// batched insert; keyed tables get INSERT ... ON CONFLICT DO UPDATE so
// repeated polls converge to the latest observed values.
//
// Storage-format concerns live here: epoch-millisecond fields are converted
// to absolute time at the write boundary, and server-side columns
// (updated_at, ingested_at) are derived from the write's own clock.
package writer
