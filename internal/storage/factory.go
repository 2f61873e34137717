package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/config"
)

// New builds the backend named by cfg.DBType.
func New(ctx context.Context, cfg *config.Config, logger internal.Logger) (Repositories, error) {
	switch cfg.DBType {
	case "memory":
		return NewMemoryStorage(), nil
	case "file":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data dir: %w", err)
		}
		s, err := NewFileStorage(
			filepath.Join(cfg.DataDir, "food_entries.json"),
			filepath.Join(cfg.DataDir, "preferences.json"),
			logger,
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := NewSQLiteStorage(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := NewPostgresStorage(ctx, cfg.DBDSN, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.DBType)
	}
}
