// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	perfstore "github.com/dalemusser/stratadash/internal/app/store/performance"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the dataset catalog.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema and
// Startup. The catalog is compiled in, so there is no connection to fail.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	store := perfstore.New()

	logger.Info("loaded performance datasets", zap.Int("datasets", store.Len()))

	return DBDeps{Datasets: store}, nil
}

// EnsureSchema checks the catalog invariants: every tab has a non-empty
// dataset with finite, non-negative durations. A violation aborts startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := deps.Datasets.Validate(); err != nil {
		logger.Error("dataset catalog failed validation", zap.Error(err))
		return err
	}

	logger.Info("dataset catalog validated")
	return nil
}
