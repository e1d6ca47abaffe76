package pipeline

import "github.com/ghost-mann/binance-ingest/internal/model"

// State is a pair's terminal processing state within one cycle.
type State string

const (
	StateWritten State = "written"
	StateFailed  State = "failed"
)

// Stage names the step at which a pair failed.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageNormalize Stage = "normalize"
	StageWrite     Stage = "write"
)

// Outcome is the result of one (symbol, endpoint) pair in one cycle.
type Outcome struct {
	Symbol   string
	Endpoint model.Endpoint
	State    State
	Stage    Stage // failing stage, set only when State is StateFailed
	Rows     int   // rows written; 0 for an empty valid payload
	Err      error // underlying failure, nil when written
}

// Failed reports whether the pair ended in a failure state.
func (o Outcome) Failed() bool {
	return o.State == StateFailed
}
