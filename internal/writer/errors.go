package writer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a write failure for the orchestrator.
type Kind string

const (
	ConnectionFailure   Kind = "connection_failure"
	ConstraintViolation Kind = "constraint_violation"
	Other               Kind = "other"
)

// WriteError is a persistence failure for one batch.
type WriteError struct {
	Kind  Kind
	Table string
	err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Table, e.Kind, e.err)
}

func (e *WriteError) Unwrap() error {
	return e.err
}

// IsKind reports whether err is a WriteError with the given kind.
func IsKind(err error, k Kind) bool {
	var werr *WriteError
	return errors.As(err, &werr) && werr.Kind == k
}

// classify wraps a database error with its failure kind.
// SQLSTATE class 23 is integrity constraint violation, class 08 is
// connection exception.
func classify(table string, err error) *WriteError {
	kind := Other

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		switch {
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23":
			kind = ConstraintViolation
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08":
			kind = ConnectionFailure
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = ConnectionFailure
	}

	return &WriteError{Kind: kind, Table: table, err: err}
}
