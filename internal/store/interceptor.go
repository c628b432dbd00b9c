package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// QueryInterceptor is the subset of *sql.DB used by the sub-stores.
type QueryInterceptor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type loggingInterceptor struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewQueryInterceptor wraps db so every statement is logged at debug level.
func NewQueryInterceptor(db *sql.DB) QueryInterceptor {
	return &loggingInterceptor{db: db, logger: zap.S().Named("store")}
}

func (l *loggingInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := l.db.QueryContext(ctx, query, args...)
	l.log("query", query, args, start, err)
	return rows, err
}

func (l *loggingInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := l.db.QueryRowContext(ctx, query, args...)
	l.log("query_row", query, args, start, row.Err())
	return row
}

func (l *loggingInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := l.db.ExecContext(ctx, query, args...)
	l.log("exec", query, args, start, err)
	return res, err
}

func (l *loggingInterceptor) log(op, query string, args []any, start time.Time, err error) {
	if err != nil {
		l.logger.Debugw(op, "query", query, "args", args, "duration", time.Since(start), "error", err)
		return
	}
	l.logger.Debugw(op, "query", query, "args", args, "duration", time.Since(start))
}
