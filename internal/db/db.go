package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/orgball2608/subscraper/internal/migrations"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// Open connects to the configured ledger database and returns the goose dialect to migrate it with.
func Open(cfg *config.Config) (*sql.DB, string, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		connect, err := sql.Open("postgres", cfg.GetDSN())
		if err != nil {
			return nil, "", err
		}
		return connect, "postgres", nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0755); err != nil {
			return nil, "", err
		}
		connect, err := sql.Open("sqlite", cfg.Storage.SQLitePath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
		if err != nil {
			return nil, "", err
		}
		return connect, "sqlite3", nil
	default:
		return nil, "", fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Migrate runs a goose command (up, down, status, reset, ...) with the registered Go migrations.
func Migrate(ctx context.Context, db *sql.DB, dialect, command string, args ...string) error {
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.RunContext(ctx, command, db, ".", args...)
}

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// New opens the ledger database and migrates it up when the app starts.
func New(opts Opts) (*sql.DB, error) {
	connect, dialect, err := Open(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := connect.PingContext(ctx); err != nil {
				return fmt.Errorf("failed to ping database: %w", err)
			}
			if err := Migrate(ctx, connect, dialect, "up"); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			opts.Logger.Info("Database migrated", "driver", opts.Config.Storage.Driver)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return connect.Close()
		},
	})

	return connect, nil
}
