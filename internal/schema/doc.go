// Package schema is the static endpoint registry.
//
// For each polled endpoint it records the REST path, the accepted query
// parameters, the expected raw payload shape, the target table with its
// column order, and the conflict key driving upsert semantics.
//
// The registry is pure data. Misconfiguration is a test-time defect, not a
// runtime error.
package schema
