package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/coincoast/memesboost-backend/internal/common/config"
)

// Open initializes a SQL connection for the configured driver and bootstraps
// the schema. Supported drivers: sqlite (file-embedded) and postgres.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		// Foreign keys are off by default in SQLite; the user_tasks cascade
		// depends on them.
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Storage.SQLitePath)
		db, err = sqlx.Open("sqlite", dsn)
	case config.DriverPostgres:
		if cfg.Storage.PostgresDSN == "" {
			return nil, fmt.Errorf("empty postgres DSN")
		}
		db, err = sqlx.Open("postgres", cfg.Storage.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := bootstrap(ctx, db, cfg.Storage.Driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}

	return db, nil
}

func bootstrap(ctx context.Context, db *sqlx.DB, driver string) error {
	stmts := sqliteSchema
	if driver == config.DriverPostgres {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
