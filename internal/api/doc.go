// Package api is the Binance public REST client.
//
// The client performs unauthenticated GETs against the /api/v3 surface with
// retry and exponential backoff, and decodes responses into raw payload
// types. It does no payload validation beyond JSON decoding; the normalize
// package owns the endpoint contracts.
package api
