package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// count takes filter options only.
func count(ctx context.Context, db QueryInterceptor, table string, opts []ListOption) (int, error) {
	query, args, err := apply(sq.Select("COUNT(*)").From(table), opts).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	err = db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func nowIfZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
