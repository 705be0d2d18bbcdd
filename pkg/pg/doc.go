// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver. It offers a thin abstraction around connection pooling,
// migrations, health checks, and common error helpers so that the lead
// storage layer can bootstrap a resilient database connection with only a
// few lines of code.
//
// # Architecture
//
// The package exposes three cooperating building blocks:
//
//   - Config – a declarative struct whose fields are populated from
//     environment variables via github.com/caarlos0/env. It controls
//     connection pool limits, health-check cadence and migration paths.
//
//   - Connect – opens a *pgxpool.Pool based on Config, retrying with a
//     growing backoff until the database becomes available.
//
//   - Migrate – runs goose database migrations against the same connection
//     pool, guaranteeing the schema is up-to-date before the service starts
//     serving traffic. The lead schema ships under pkg/lead/migrations.
//
// # Usage
//
//	package main
//
//	import (
//	    "context"
//	    "log/slog"
//
//	    "github.com/dealerdesk/leadkit/pkg/config"
//	    "github.com/dealerdesk/leadkit/pkg/pg"
//	)
//
//	func main() {
//	    var cfg pg.Config
//	    config.MustLoad(&cfg)
//
//	    ctx := context.Background()
//	    pool, err := pg.Connect(ctx, cfg)
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer pool.Close()
//
//	    if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	        panic(err)
//	    }
//
//	    // expose health endpoint
//	    health := pg.Healthcheck(pool)
//	    if err := health(ctx); err != nil {
//	        panic(err)
//	    }
//	}
//
// # Configuration
//
// All configuration values are provided through environment variables so
// that they can be tuned per-environment without code changes. Refer to the
// field tags in Config for exact variable names and defaults.
//
// # Error Handling
//
// Convenience helpers such as [IsNotFoundError] or [IsDuplicateKeyError]
// unwrap errors returned by pgx and make error classification trivial inside
// repository code.
package pg
