package store

// Instance queries
const (
	queryGetInstance = `
		SELECT id, public_dns_name, image_id, instance_type, state, suite_build,
			termination_date, created_at, updated_at
		FROM instances WHERE id = ?`

	queryUpsertInstance = `
		INSERT INTO instances (id, public_dns_name, image_id, instance_type, state,
			suite_build, termination_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, now())
		ON CONFLICT (id) DO UPDATE SET
			public_dns_name = EXCLUDED.public_dns_name,
			image_id = EXCLUDED.image_id,
			instance_type = EXCLUDED.instance_type,
			state = EXCLUDED.state,
			suite_build = EXCLUDED.suite_build,
			termination_date = EXCLUDED.termination_date,
			updated_at = now()`

	queryUpdateInstanceState = `
		UPDATE instances SET state = ?, updated_at = now() WHERE id = ?`
)

// Invocation queries
const (
	queryInsertInvocation = `
		INSERT INTO invocations (id, document, host_ids, commands, outcome, output, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			outcome = EXCLUDED.outcome,
			output = EXCLUDED.output`
)

// Test run queries
const (
	queryInsertTestRun = `
		INSERT INTO test_runs (id, suite, source, passed, failed, errored, skipped, result_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
)
