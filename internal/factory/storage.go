package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/config"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store/postgres"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store/sqlite"
)

// NewStore selects the store adapter based on cfg.DBDriver and applies its schema.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite open: %w", err)
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite store")
		return sqlite.NewWithDB(db), nil
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres open: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Msg("Using Postgres store")
		return postgres.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
