package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// TestRunStore keeps the outcome counts of every reported result file.
type TestRunStore struct {
	db QueryInterceptor
}

func NewTestRunStore(db QueryInterceptor) *TestRunStore {
	return &TestRunStore{db: db}
}

func (s *TestRunStore) Save(ctx context.Context, rec models.TestRunRecord) error {
	if rec.ID == "" {
		return srvErrors.NewValidationError("id", "test run id is required")
	}
	if rec.Suite == "" {
		return srvErrors.NewValidationError("suite", "test run suite is required")
	}
	_, err := s.db.ExecContext(ctx, queryInsertTestRun,
		rec.ID,
		rec.Suite,
		rec.Source,
		rec.Passed,
		rec.Failed,
		rec.Errored,
		rec.Skipped,
		rec.ResultID,
		nowIfZero(rec.CreatedAt),
	)
	return err
}

func (s *TestRunStore) List(ctx context.Context, opts ...ListOption) ([]models.TestRunRecord, error) {
	builder := sq.Select("id", "suite", "source", "passed", "failed", "errored", "skipped", "result_id", "created_at").
		From("test_runs")

	query, args, err := apply(builder, opts).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TestRunRecord
	for rows.Next() {
		var rec models.TestRunRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Suite,
			&rec.Source,
			&rec.Passed,
			&rec.Failed,
			&rec.Errored,
			&rec.Skipped,
			&rec.ResultID,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *TestRunStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	return count(ctx, s.db, "test_runs", opts)
}
