package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"chaincast/config"
	"chaincast/internal/domain/lifecycle"
	"chaincast/internal/errors"

	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
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

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration must be provided")
	}

	db, err := gorm.Open(pgdriver.Open(params.Config.Postgres.DSN()), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
		TranslateError:         true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	applyPoolSettings(sqlDB, params.Config.Postgres)

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
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

func applyPoolSettings(sqlDB *sql.DB, cfg *config.PostgresConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// monitorDBPool samples pool statistics and reports intervals in which
// requests had to wait for a free connection.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			logPoolWait(ctx, logger, last, stats)
			last = stats
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, last, cur sql.DBStats) {
	waits := cur.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - last.WaitDuration

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)
}
