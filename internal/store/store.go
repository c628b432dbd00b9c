package store

import (
	"context"
	"database/sql"

	"github.com/syslinkats/ats-harness/internal/store/migrations"
)

// Store provides access to all ledger repositories.
type Store struct {
	db          *sql.DB
	instances   *InstanceStore
	invocations *InvocationStore
	testRuns    *TestRunStore
}

func NewStore(db *sql.DB) *Store {
	qi := NewQueryInterceptor(db)
	return &Store{
		db:          db,
		instances:   NewInstanceStore(qi),
		invocations: NewInvocationStore(qi),
		testRuns:    NewTestRunStore(qi),
	}
}

// Migrate brings the schema up to date.
func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Instances() *InstanceStore {
	return s.instances
}

func (s *Store) Invocations() *InvocationStore {
	return s.invocations
}

func (s *Store) TestRuns() *TestRunStore {
	return s.testRuns
}

func (s *Store) Close() error {
	return s.db.Close()
}
