// Package server provides the HTTP server behind `ats serve`.
//
// The server exposes the run ledger read-only so operators can see what the
// harness launched, which commands it sent and how test runs went without
// opening the DuckDB file.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Recovery (ginzap.RecoveryWithZap, all routes)          │  │
//	│  │  Logger (request/response logging, /api/v1 only)        │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  NoRoute → 404 {"error": "not found"}                         │
//	└───────────────────────────────────────────────────────────────┘
//
// # Modes
//
// API.Mode selects the gin mode: "dev" runs gin in debug mode, "prod" in
// release mode. The server always speaks plain HTTP on API.Port.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handlers.New(st))
//	})
//
//	// Blocks until ListenAndServe fails or ctx is cancelled.
//	err = srv.Start(ctx)
//
// Cancelling ctx shuts the server down gracefully, waiting up to ten seconds
// for in-flight requests. Stop can also be called directly.
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start at debug: method, path, query, IP, user-agent
//   - Logs request end at info: all above + status code, latency
//   - Errors attached to the gin context are logged separately
//   - Uses the "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
package server
