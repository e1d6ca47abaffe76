package writer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ghost-mann/binance-ingest/internal/schema"
)

// DB is the store handle the writer runs transactions against.
// Satisfied by *pgxpool.Pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Writer performs idempotent batched writes against the store.
type Writer struct {
	db     DB
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Writer bound to a store handle. The handle is shared
// read-only across pipeline invocations; the Writer never closes it.
func New(db DB, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// msToTime converts epoch milliseconds to absolute time, floored to whole
// seconds.
func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, 0).UTC()
}

// upsertSQL builds the single-row insert statement for a spec, with an
// ON CONFLICT DO UPDATE clause overwriting all non-key columns when the
// spec carries a conflict key.
func upsertSQL(spec schema.Spec) string {
	placeholders := make([]string, len(spec.Columns))
	for i := range spec.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		spec.Table,
		strings.Join(spec.Columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if spec.AppendOnly() {
		return sql
	}

	sets := make([]string, 0, len(spec.Columns)-len(spec.ConflictKey))
	for _, col := range spec.Columns {
		if slices.Contains(spec.ConflictKey, col) {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}

	return sql +
		" ON CONFLICT (" + strings.Join(spec.ConflictKey, ", ") + ")" +
		" DO UPDATE SET " + strings.Join(sets, ", ")
}

// writeRows runs one batch as one transaction. Empty input is a no-op that
// never touches the store.
func (w *Writer) writeRows(ctx context.Context, spec schema.Spec, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	start := time.Now()
	sql := upsertSQL(spec)

	tx, err := w.db.Begin(ctx)
	if err != nil {
		return classify(spec.Table, fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(sql, row...)
	}

	results := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return classify(spec.Table, err)
		}
	}
	if err := results.Close(); err != nil {
		return classify(spec.Table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return classify(spec.Table, fmt.Errorf("commit: %w", err))
	}

	w.logger.Debug("batch written",
		"table", spec.Table,
		"rows", len(rows),
		"duration", time.Since(start),
	)
	return nil
}
