// Package storage selects and opens the configured artifact store.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/artifact"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/config"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/postgres"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/sqlite"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/migrations"
	pkgpostgres "github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/postgres"
)

// Options names the store and where it lives.
type Options struct {
	Kind        string
	Path        string
	DatabaseURL string
	SQLitePath  string
}

// Open returns the store for opts.Kind and a function releasing its
// resources. The postgres store runs the embedded migrations first.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (port.ArtifactStore, func(), error) {
	switch opts.Kind {
	case config.StoreFile, "":
		logger.Info("using file artifact store", "path", opts.Path)
		return artifact.NewFileStore(opts.Path), func() {}, nil

	case config.StorePostgres:
		if err := pkgpostgres.RunMigrations(opts.DatabaseURL, migrations.FS); err != nil {
			return nil, nil, fmt.Errorf("migrate artifact tables: %w", err)
		}
		pool, err := pkgpostgres.NewPool(ctx, pkgpostgres.PoolConfig{
			URL:             opts.DatabaseURL,
			ApplicationName: "nutrition-artifacts",
			MaxConns:        4,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres artifact store")
		return postgres.NewArtifactRepository(pool), pool.Close, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(opts.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("using sqlite artifact store", "path", opts.SQLitePath)
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close sqlite store", "error", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown artifact store %q", opts.Kind)
	}
}
