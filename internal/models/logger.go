package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// SlowQueryThreshold is the duration above which a query is logged as warning.
const SlowQueryThreshold = 200 * time.Millisecond

// logger writes gorm logs to zerolog.
type logger struct {
	Logger        zerolog.Logger
	SlowThreshold time.Duration
	level         gorm_logger.LogLevel
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{
		Logger:        l.With().Str("component", "database").Logger(),
		SlowThreshold: SlowQueryThreshold,
		level:         gorm_logger.Info,
	}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	n := *l
	n.level = level
	return &n
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

// Trace logs every query at debug level. Failed queries are errors, except
// for lookups of resources that do not exist, which are normal for the ledger.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	notFound := errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
	switch {
	case err != nil && !notFound && l.level >= gorm_logger.Error:
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= gorm_logger.Warn:
		l.Logger.Warn().Fields(fields).Msg("[GORM] slow query")
	default:
		l.Logger.Debug().Fields(fields).Msg("[GORM] query")
	}
}
