// Package breeds stores the reference breed profiles the lactation engine runs on.
package breeds

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/config"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// ErrBreedNotFound indicates no profile exists for the requested key.
var ErrBreedNotFound = errors.New("breed not found")

// Repository defines the breed profile operations used by the services.
type Repository interface {
	List(ctx context.Context) ([]models.BreedProfile, error)
	Get(ctx context.Context, key string) (models.BreedProfile, error)
	Upsert(ctx context.Context, profile models.BreedProfile) error
	Close() error
}

// Open builds the store selected by cfg.Driver. SQL stores are seeded from the
// catalog file when they hold no breeds yet.
func Open(ctx context.Context, cfg config.BreedStoreConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case config.DriverMemory:
		profiles, err := LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		logger.Info("breed catalog loaded", zap.String("path", cfg.CatalogPath), zap.Int("breeds", len(profiles)))
		return NewMemoryStore(profiles), nil
	case config.DriverSQLite, config.DriverPostgres:
		dialect, dsn := SQLite, cfg.SQLitePath
		if cfg.Driver == config.DriverPostgres {
			dialect, dsn = Postgres, cfg.DatabaseURL
		}

		store, err := NewSQLStore(ctx, dialect, dsn, logger)
		if err != nil {
			return nil, err
		}
		if err := seedIfEmpty(ctx, store, cfg.CatalogPath, logger); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported breed store driver %q", cfg.Driver)
	}
}

func seedIfEmpty(ctx context.Context, store Repository, catalogPath string, logger *zap.Logger) error {
	existing, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 || catalogPath == "" {
		return nil
	}

	profiles, err := LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := store.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed breed %s: %w", p.Key, err)
		}
	}

	logger.Info("breed store seeded", zap.String("path", catalogPath), zap.Int("breeds", len(profiles)))
	return nil
}
