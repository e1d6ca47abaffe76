// Package pipeline orchestrates the fetch → normalize → write sequence.
//
// One cycle evaluates every (symbol, endpoint) pair and returns one Outcome
// per pair. Pairs are independent: a failure in one never suppresses
// another, and nothing propagates past RunCycle. Retry policy belongs to
// the surrounding scheduler, not here.
package pipeline
