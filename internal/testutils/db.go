package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Yashshinde43/tinyurl/internal/platform/postgres"
)

const (
	setupTimeout   = 30 * time.Second
	attemptTimeout = 2 * time.Second
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = time.Second
)

// SetupDB opens a pool against dsn, retrying while the database comes
// up, and applies the embedded migrations. Integration suites call it
// once per container and get back a schema-ready handle.
func SetupDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := openWithRetry(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(db); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("testutils: migrate: %w", err)
	}

	return db, nil
}

func openWithRetry(ctx context.Context, dsn string) (*sql.DB, error) {
	deadline := time.Now().Add(setupTimeout)
	backoff := initialBackoff

	var lastErr error

	for time.Now().Before(deadline) {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		db, err := postgres.Open(attemptCtx, postgres.OpenConfig{
			DSN:             dsn,
			MaxOpenConns:    5,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		})
		cancel()

		if err == nil {
			return db, nil
		}

		lastErr = err
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("testutils: open db: %w", ctx.Err())
		case <-time.After(backoff):
		}

		if backoff < maxBackoff {
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("testutils: open db (timeout=%s): %w", setupTimeout, lastErr)
}
