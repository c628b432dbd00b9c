// Package handlers implements the read-only ledger API served under /api/v1.
//
// Handlers satisfy v1.ServerInterface and read from the store facade. They
// never write.
//
// # Endpoints
//
//	┌────────┬───────────────────┬──────────────────────────────────────────┐
//	│ Method │ Path              │ Description                              │
//	├────────┼───────────────────┼──────────────────────────────────────────┤
//	│ GET    │ /health           │ 200 when the ledger answers, else 503    │
//	│ GET    │ /instances        │ Paged instance ledger, ?state= filter    │
//	│ GET    │ /instances/:id    │ One instance, 404 when unknown           │
//	│ GET    │ /invocations      │ Paged invocations, ?outcome= filter      │
//	│ GET    │ /testruns         │ Paged test runs, ?suite= filter          │
//	└────────┴───────────────────┴──────────────────────────────────────────┘
//
// # Pagination
//
// Every list endpoint accepts:
//
//	page      1-based page number (default 1)
//	pageSize  items per page (default 20, capped at 100)
//	sort      repeatable, "field" or "field:desc"; fields: id, createdAt
//
// Without sort, rows come back newest first. An unknown sort field or
// direction returns 400. Responses carry page, pageCount and total; an empty
// result still reports pageCount 1.
//
// # Errors
//
// Store failures are logged under "ledger_handler" and answered with 500 and
// a fixed message; the underlying error is not exposed to the client.
package handlers
