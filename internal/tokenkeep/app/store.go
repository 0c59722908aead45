package app

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store/drivers/memory"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store/drivers/postgres"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store/drivers/sqlite"
)

// OpenStore connects to the configured document store and applies its
// migrations. The store is closed again if migrating fails.
func OpenStore(ctx context.Context, cfg DatabaseConfig) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.Driver {
	case DriverSQLite:
		st, err = sqlite.NewStore(cfg.DSN)
	case DriverPostgres:
		st, err = postgres.NewStore(ctx, cfg.DSN)
	case DriverMemory:
		st = memory.NewStore()
	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", ErrInvalidConfig, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return st, nil
}
