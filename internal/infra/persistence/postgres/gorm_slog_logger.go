package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chaincast/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond

	// Statements against the accounts table carry bound hashes and codes, so
	// logged SQL is capped rather than emitted in full.
	maxLoggedSQLLength = 512
)

type gormSlogLogger struct {
	logger            *slog.Logger
	level             logger.LogLevel
	slowThreshold     time.Duration
	skipNotFoundError bool
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	slowThreshold := defaultSlowQueryThreshold
	if cfg != nil {
		if cfg.Env.Debug {
			level = logger.Info
		}
		if cfg.Postgres != nil && cfg.Postgres.SlowQueryThreshold > 0 {
			slowThreshold = cfg.Postgres.SlowQueryThreshold
		}
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
		// Lookups by email legitimately miss on signup and login.
		skipNotFoundError: true,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, gormLevel logger.LogLevel, slogLevel slog.Level, msg string, args ...any) {
	if l.level < gormLevel || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.shouldLogError(err):
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.shouldLogSlow(elapsed):
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Query", l.queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()
	if len(sql) > maxLoggedSQLLength {
		sql = sql[:maxLoggedSQLLength] + "..."
	}

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

func (l *gormSlogLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	if l.skipNotFoundError && errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}

	return true
}

func (l *gormSlogLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}
