package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"medify/config"
	"medify/internal/domain/lifecycle"
	"medify/internal/errors"
	"medify/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client, migrates the schema on startup and
// watches the connection pool for contention.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step operations run under txManager.Execute; GORM's implicit
		// per-statement transaction only adds round trips.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := migrate(db.WithContext(ctx)); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate reconciles the schema with the persistence models. Order matters:
// accounts before the tables that reference them.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AccountModel{},
		&model.WebsiteSetupModel{},
		&model.BusinessInfoModel{},
		&model.RefreshTokenModel{},
	)
}

// monitorDBPool periodically samples sql.DB stats and logs when requests had
// to wait for a connection.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur
			if waitDelta == 0 {
				continue
			}
			attrs := []slog.Attr{
				slog.Int64("wait_count_delta", waitDelta),
				slog.Duration("wait_duration_delta", waitDurationDelta),
				slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("max_open_conns", cur.MaxOpenConnections),
				slog.Int("open_conns", cur.OpenConnections),
				slog.Int("in_use_conns", cur.InUse),
				slog.Int("idle_conns", cur.Idle),
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "postgres pool wait", attrs...)
		}
	}
}
