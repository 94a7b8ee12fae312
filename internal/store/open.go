package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	dbfs "github.com/adso-sena/agenda/db"
	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/db"
)

// Open builds the store selected by cfg. The sqlite store is migrated up
// before use. A configured seed file is loaded into an empty store.
func Open(ctx context.Context, log *slog.Logger, cfg config.StorageConfig) (Store, error) {
	if log == nil {
		log = slog.Default()
	}
	var s Store
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", config.StorageMemory:
		s = NewMemoryStore()
	case config.StorageSQLite:
		conn, err := db.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		// Migrate through the same connection so ":memory:" databases keep their schema.
		if err := db.MigrateUp(log, conn, dbfs.MigrationsFS, "migrations"); err != nil {
			_ = conn.Close()
			return nil, err
		}
		s = NewSQLiteStore(conn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q (use: memory, sqlite)", cfg.Driver)
	}

	if path := strings.TrimSpace(cfg.SeedFile); path != "" {
		items, err := LoadSeed(path)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		n, err := Seed(ctx, s, items)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		if n > 0 {
			log.Info("store seeded", slog.Int("count", n), slog.String("file", path))
		}
	}
	return s, nil
}
