package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

var instanceColumns = []string{
	"id", "public_dns_name", "image_id", "instance_type", "state",
	"suite_build", "termination_date", "created_at", "updated_at",
}

// InstanceStore keeps the ledger of instances the harness launched or acted on.
type InstanceStore struct {
	db QueryInterceptor
}

func NewInstanceStore(db QueryInterceptor) *InstanceStore {
	return &InstanceStore{db: db}
}

// Save inserts rec or updates the existing row with the same ID.
// A zero CreatedAt is stored as now.
func (s *InstanceStore) Save(ctx context.Context, rec models.InstanceRecord) error {
	if rec.ID == "" {
		return srvErrors.NewValidationError("id", "instance id is required")
	}
	created := nowIfZero(rec.CreatedAt)
	_, err := s.db.ExecContext(ctx, queryUpsertInstance,
		rec.ID,
		rec.PublicDNSName,
		rec.ImageID,
		rec.InstanceType,
		rec.State,
		rec.SuiteBuild,
		rec.TerminationDate,
		created,
	)
	return err
}

func (s *InstanceStore) Get(ctx context.Context, id string) (*models.InstanceRecord, error) {
	row := s.db.QueryRowContext(ctx, queryGetInstance, id)

	rec, err := scanInstance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewResourceNotFoundError("instance", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// SetState updates the state of every known instance in ids. Unknown IDs are
// ignored.
func (s *InstanceStore) SetState(ctx context.Context, state string, ids ...string) error {
	for _, id := range ids {
		if _, err := s.db.ExecContext(ctx, queryUpdateInstanceState, state, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *InstanceStore) List(ctx context.Context, opts ...ListOption) ([]models.InstanceRecord, error) {
	query, args, err := apply(sq.Select(instanceColumns...).From("instances"), opts).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.InstanceRecord
	for rows.Next() {
		rec, err := scanInstance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *InstanceStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	return count(ctx, s.db, "instances", opts)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInstance(row scanner) (models.InstanceRecord, error) {
	var rec models.InstanceRecord
	err := row.Scan(
		&rec.ID,
		&rec.PublicDNSName,
		&rec.ImageID,
		&rec.InstanceType,
		&rec.State,
		&rec.SuiteBuild,
		&rec.TerminationDate,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
