package migrate

import (
	"context"
	"fmt"

	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/db"
	"github.com/dmtumanov/beanline-backend/pkg/db/models"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

// MaybeRunDev executes migrations automatically when the app is running in
// dev mode and the feature flag is enabled. SQLite deployments use gorm's
// auto-migration; postgres runs the goose SQL migrations.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.FeatureFlags.UseSQLite {
		logg.Info(ctx, "running gorm auto-migration (sqlite dev)")
		return AutoMigrateSQLite(client)
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "dir": DefaultDir}
	ctx = logg.WithFields(ctx, meta)
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}

// AutoMigrateSQLite creates the schema through gorm for sqlite targets.
func AutoMigrateSQLite(client *db.Client) error {
	return client.DB().AutoMigrate(
		&models.Order{},
		&models.OrderLineItem{},
		&models.PromoCode{},
	)
}
