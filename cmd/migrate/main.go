// Command migrate creates the order schema and seeds the reference order statuses.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"orderservice/config"
	logs "orderservice/internal/infra/log"
	"orderservice/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const migrateTimeout = 5 * time.Minute

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	)

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// registerMigration runs after the database hook has verified the connection.
func registerMigration(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Migrating order schema")
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}

			logger.Info("Seeding order statuses")
			if err := postgres.SeedOrderStatuses(ctx, db); err != nil {
				return err
			}

			logger.Info("Migration completed")

			return nil
		},
	})
}
