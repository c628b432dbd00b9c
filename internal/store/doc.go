// Package store implements the run ledger of the harness.
//
// The ledger is a DuckDB file that records what the harness did: which
// instances it launched or acted on, which commands it submitted to remote
// hosts, and the outcome counts of every reported result file. Nothing in the
// harness reads the ledger back to make decisions; it exists for operators and
// for the read-only HTTP API.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────┬─────────────────────┬─────────────────────┤
//	│    InstanceStore    │   InvocationStore   │    TestRunStore     │
//	│         ▼           │          ▼          │          ▼          │
//	│     instances       │     invocations     │      test_runs      │
//	├─────────────────────┴─────────────────────┴─────────────────────┤
//	│                QueryInterceptor (debug logging)                 │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
// All tables are created by migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  instances         │  Launched instances, state, termination tag │
//	│  invocations       │  Remote command submissions and outcomes    │
//	│  test_runs         │  Result file outcome counts per suite       │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	db, _ := NewDB(path)          ":memory:" opens a private database
//	s := NewStore(db)
//	    └── wraps db in a QueryInterceptor shared by all sub-stores
//	s.Migrate(ctx)
//	    └── migrations.Run()      applies missing versions, one tx each
//
// # InstanceStore
//
//   - Save(ctx, rec) → error (UPSERT on id, refreshes updated_at)
//   - Get(ctx, id) → *models.InstanceRecord, ResourceNotFoundError if unknown
//   - SetState(ctx, state, ids...) → error
//   - List(ctx, opts...) / Count(ctx, opts...)
//
// # InvocationStore
//
// InvocationStore satisfies remote.Recorder, so the dispatcher writes one row
// per submission. Host IDs and commands are stored as JSON arrays.
//
//   - RecordInvocation(ctx, rec) → error (re-recording an id updates outcome)
//   - List(ctx, opts...) / Count(ctx, opts...)
//
// # TestRunStore
//
//   - Save(ctx, rec) → error (id and suite are required)
//   - List(ctx, opts...) / Count(ctx, opts...)
//
// # List Options
//
// Every List accepts squirrel based ListOption values:
//
//	┌──────────────────┬──────────────────────────────────────────┐
//	│  Option          │  Effect                                  │
//	├──────────────────┼──────────────────────────────────────────┤
//	│  ByIDs           │  id IN (...)                             │
//	│  ByStates        │  state IN (...)        instances only    │
//	│  ByOutcomes      │  outcome IN (...)      invocations only  │
//	│  BySuites        │  suite IN (...)        test_runs only    │
//	│  CreatedSince    │  created_at >= t                         │
//	│  WithLimit       │  LIMIT n                                 │
//	│  WithOffset      │  OFFSET n                                │
//	│  WithDefaultSort │  created_at DESC, id                     │
//	│  WithSort        │  id / createdAt, tie-broken by id        │
//	└──────────────────┴──────────────────────────────────────────┘
//
// Count takes filter options only; ordering and paging options make the
// generated COUNT query invalid.
package store
