package store

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"

	"github.com/syslinkats/ats-harness/internal/models"
)

// InvocationStore records every command submitted to remote hosts.
type InvocationStore struct {
	db QueryInterceptor
}

func NewInvocationStore(db QueryInterceptor) *InvocationStore {
	return &InvocationStore{db: db}
}

// RecordInvocation stores rec. Recording the same ID again updates its
// outcome and output.
func (s *InvocationStore) RecordInvocation(ctx context.Context, rec models.InvocationRecord) error {
	hostIDs, err := json.Marshal(nonNil(rec.HostIDs))
	if err != nil {
		return err
	}
	commands, err := json.Marshal(nonNil(rec.Commands))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, queryInsertInvocation,
		rec.ID,
		rec.Document,
		string(hostIDs),
		string(commands),
		string(rec.Outcome),
		rec.Output,
		nowIfZero(rec.CreatedAt),
	)
	return err
}

func (s *InvocationStore) List(ctx context.Context, opts ...ListOption) ([]models.InvocationRecord, error) {
	builder := sq.Select("id", "document", "host_ids", "commands", "outcome", "output", "created_at").
		From("invocations")

	query, args, err := apply(builder, opts).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.InvocationRecord
	for rows.Next() {
		var (
			rec      models.InvocationRecord
			hostIDs  string
			commands string
			outcome  string
		)
		if err := rows.Scan(&rec.ID, &rec.Document, &hostIDs, &commands, &outcome, &rec.Output, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(hostIDs), &rec.HostIDs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(commands), &rec.Commands); err != nil {
			return nil, err
		}
		rec.Outcome = models.InvocationOutcome(outcome)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *InvocationStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	return count(ctx, s.db, "invocations", opts)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
